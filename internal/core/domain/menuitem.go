package domain

import "errors"

var ErrMenuItemNotFound = errors.New("menu item not found")
var ErrNoUpdateFields = errors.New("no valid fields to update")

// MenuItem is a dish offered by the canteen. Categories holds category
// names as free text; the association carries no referential integrity.
type MenuItem struct {
	MenuItemID  string   `json:"menu_item_id" bson:"menu_item_id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Categories  []string `json:"categories" bson:"categories"`
}
