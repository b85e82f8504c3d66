package ports

import "context"

// CourseWinner is the plurality-winning menu item for one course.
type CourseWinner struct {
	MenuItemID  string
	Name        string
	Description string
	Categories  []string
}

// DailyMenuDisplay is the aggregated menu for one calendar day. Courses
// with no selections are absent from the map; a course whose winning item
// no longer exists maps to nil.
type DailyMenuDisplay struct {
	Date              string
	MenuItemsByCourse map[string]*CourseWinner
}

// MenuDisplayService computes the aggregated daily menu.
type MenuDisplayService interface {
	DailyDisplay(ctx context.Context, date string) (*DailyMenuDisplay, error)
}
