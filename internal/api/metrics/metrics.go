// Package metrics defines and registers the custom Prometheus metrics for
// the canteen API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "canteen"

// SelectionsSubmittedTotal counts selection submissions that persisted.
// Label:
//   - result: "created" (first submission for the user/date) or "updated"
var SelectionsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "selections_submitted_total",
		Help:      "Total number of user selection submissions, by outcome.",
	},
	[]string{"result"},
)

// DailyMenuRequestsTotal counts successful daily menu aggregations.
var DailyMenuRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "daily_menu_requests_total",
		Help:      "Total number of daily menu display aggregations served.",
	},
)

// MenuItemsCreatedTotal counts newly created menu items.
var MenuItemsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_items_created_total",
		Help:      "Total number of menu items created.",
	},
)
