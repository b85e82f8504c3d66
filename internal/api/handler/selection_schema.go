package handler

type submitSelectionsRequest struct {
	Date       string            `json:"date"       validate:"required"`
	Selections map[string]string `json:"selections" validate:"required"`
}

type selectionResponse struct {
	UserSelectionID string            `json:"user_selection_id"`
	UserID          string            `json:"user_id"`
	Date            string            `json:"date"`
	Selections      map[string]string `json:"selections"`
}

// courseWinnerResponse is the plurality winner rendered for one course.
type courseWinnerResponse struct {
	MenuItemID  string   `json:"menu_item_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

// dailyMenuDisplayResponse maps each course that received votes to its
// winning item, or to null when the winner no longer exists.
type dailyMenuDisplayResponse struct {
	Date              string                           `json:"date"`
	MenuItemsByCourse map[string]*courseWinnerResponse `json:"menu_items_by_course"`
}
