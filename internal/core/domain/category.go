package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")

// Category is a meal course label (e.g. "Breakfast", "Diet Lunch").
// Menu items reference categories by name, not by id; deleting or renaming
// a category does not touch the items that carry its name.
type Category struct {
	CategoryID string `json:"category_id" bson:"category_id"`
	Name       string `json:"name" bson:"name"`
}
