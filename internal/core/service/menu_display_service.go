package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/stormapp/canteen-api/internal/core/domain"
	"github.com/stormapp/canteen-api/internal/core/ports"
)

// MenuDisplayService aggregates every user's selections for one calendar
// day into a per-course plurality winner.
type MenuDisplayService struct {
	selections ports.SelectionRepository
	menuItems  ports.MenuItemRepository
	logger     zerolog.Logger
}

func NewMenuDisplayService(
	selections ports.SelectionRepository,
	menuItems ports.MenuItemRepository,
	logger zerolog.Logger,
) *MenuDisplayService {
	return &MenuDisplayService{selections: selections, menuItems: menuItems, logger: logger}
}

// courseTally counts votes per menu item for one course. The ids slice
// preserves first-seen order so that ties resolve to the earliest item
// regardless of map iteration order.
type courseTally struct {
	ids    []string
	counts map[string]int
}

func (t *courseTally) add(menuItemID string) {
	if _, seen := t.counts[menuItemID]; !seen {
		t.ids = append(t.ids, menuItemID)
	}
	t.counts[menuItemID]++
}

// winner returns the menu item id holding the strictly highest count.
// The scan replaces the current best only on a strictly greater count, so
// a tie keeps whichever id was seen first.
func (t *courseTally) winner() string {
	best := ""
	bestCount := 0
	for _, id := range t.ids {
		if t.counts[id] > bestCount {
			bestCount = t.counts[id]
			best = id
		}
	}
	return best
}

// DailyDisplay validates the date, tallies every selection for that day by
// course, and resolves each course's plurality winner to its full menu
// item record. A winner that no longer exists yields an explicit nil for
// the course; a course nobody voted for is absent from the map entirely.
func (s *MenuDisplayService) DailyDisplay(ctx context.Context, date string) (*ports.DailyMenuDisplay, error) {
	if err := domain.ValidateDate(date); err != nil {
		return nil, err
	}

	selections, err := s.selections.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("date", date).Int("selections", len(selections)).Msg("aggregating daily menu")

	// Tally (course, menu_item_id) pairs. Each document contributes at most
	// one vote per course, so first-seen order per course is document order.
	tallies := make(map[string]*courseTally)
	courseOrder := make([]string, 0)
	for _, sel := range selections {
		for course, menuItemID := range sel.Selections {
			tally, ok := tallies[course]
			if !ok {
				tally = &courseTally{counts: make(map[string]int)}
				tallies[course] = tally
				courseOrder = append(courseOrder, course)
			}
			tally.add(menuItemID)
		}
	}

	byCourse := make(map[string]*ports.CourseWinner, len(tallies))
	for _, course := range courseOrder {
		winnerID := tallies[course].winner()
		if winnerID == "" {
			byCourse[course] = nil
			continue
		}

		item, err := s.menuItems.FindByID(ctx, winnerID)
		if err != nil {
			if errors.Is(err, domain.ErrMenuItemNotFound) {
				// Dangling reference: the winning item was deleted since the
				// votes were cast. The course stays in the output as null.
				byCourse[course] = nil
				continue
			}
			return nil, err
		}

		byCourse[course] = &ports.CourseWinner{
			MenuItemID:  item.MenuItemID,
			Name:        item.Name,
			Description: item.Description,
			Categories:  item.Categories,
		}
	}

	return &ports.DailyMenuDisplay{
		Date:              date,
		MenuItemsByCourse: byCourse,
	}, nil
}
