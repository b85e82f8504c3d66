package domain

import "errors"

var ErrSelectionNotFound = errors.New("user selection not found")
var ErrEmptySelections = errors.New("selections cannot be empty")

// UserSelection records which menu item a user picked for each course on a
// calendar day. At most one document exists per (user_id, date); the
// selections map is replaced wholesale on resubmission, never merged.
type UserSelection struct {
	UserSelectionID string            `json:"user_selection_id" bson:"user_selection_id"`
	UserID          string            `json:"user_id" bson:"user_id"`
	Date            string            `json:"date" bson:"date"`
	Selections      map[string]string `json:"selections" bson:"selections"`
}
