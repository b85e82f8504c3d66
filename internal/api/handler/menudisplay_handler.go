package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stormapp/canteen-api/internal/api/metrics"
	"github.com/stormapp/canteen-api/internal/core/ports"
)

// MenuDisplayHandler serves the public aggregated daily menu.
type MenuDisplayHandler struct {
	service ports.MenuDisplayService
}

func NewMenuDisplayHandler(service ports.MenuDisplayService) *MenuDisplayHandler {
	return &MenuDisplayHandler{service: service}
}

// Get handles GET /api/daily_menu_display?date=YYYY-MM-DD (no auth).
//
// @Summary      Aggregated daily menu: the most-selected item per course
// @Tags         menu_display
// @Produce      json
// @Param        date  query     string  true  "Calendar day (YYYY-MM-DD)"
// @Success      200   {object}  dailyMenuDisplayResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/daily_menu_display [get]
func (h *MenuDisplayHandler) Get(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date query parameter is required")
	}

	display, err := h.service.DailyDisplay(c.Request().Context(), date)
	if err != nil {
		return err
	}

	byCourse := make(map[string]*courseWinnerResponse, len(display.MenuItemsByCourse))
	for course, winner := range display.MenuItemsByCourse {
		if winner == nil {
			byCourse[course] = nil
			continue
		}
		byCourse[course] = &courseWinnerResponse{
			MenuItemID:  winner.MenuItemID,
			Name:        winner.Name,
			Description: winner.Description,
			Categories:  winner.Categories,
		}
	}

	metrics.DailyMenuRequestsTotal.Inc()
	return c.JSON(http.StatusOK, dailyMenuDisplayResponse{
		Date:              display.Date,
		MenuItemsByCourse: byCourse,
	})
}
