package handler

type createMenuItemRequest struct {
	Name        string   `json:"name"        validate:"required,notblank"`
	Description string   `json:"description" validate:"required,notblank"`
	Categories  []string `json:"categories"`
}

type updateMenuItemRequest struct {
	Name        *string   `json:"name"        validate:"omitempty,notblank"`
	Description *string   `json:"description"`
	Categories  *[]string `json:"categories"`
}

type menuItemResponse struct {
	MenuItemID  string   `json:"menu_item_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

type listMenuItemsResponse struct {
	MenuItems []menuItemResponse `json:"menu_items"`
}
