package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stormapp/canteen-api/internal/api/metrics"
	"github.com/stormapp/canteen-api/internal/core/domain"
	"github.com/stormapp/canteen-api/internal/core/ports"
)

// MenuItemHandler handles HTTP requests for menu item operations.
type MenuItemHandler struct {
	service ports.MenuItemService
}

func NewMenuItemHandler(service ports.MenuItemService) *MenuItemHandler {
	return &MenuItemHandler{service: service}
}

// List handles GET /api/menu_items?category=.
//
// @Summary      List menu items, optionally filtered by category name
// @Tags         menu_items
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Exact category name filter"
// @Success      200       {object}  listMenuItemsResponse
// @Failure      401       {object}  errorResponse
// @Router       /api/menu_items [get]
func (h *MenuItemHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}

	out := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toMenuItemResponse(&item))
	}
	return c.JSON(http.StatusOK, listMenuItemsResponse{MenuItems: out})
}

// Create handles POST /api/menu_item.
//
// @Summary      Create a menu item
// @Tags         menu_items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMenuItemRequest  true  "Menu item details"
// @Success      201   {object}  menuItemResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/menu_item [post]
func (h *MenuItemHandler) Create(c echo.Context) error {
	var req createMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Categories:  req.Categories,
	})
	if err != nil {
		return err
	}

	metrics.MenuItemsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toMenuItemResponse(created))
}

// Get handles GET /api/menu_item/:menu_item_id.
//
// @Summary      Get a menu item by id
// @Tags         menu_items
// @Produce      json
// @Security     BearerAuth
// @Param        menu_item_id  path      string  true  "Menu item id"
// @Success      200           {object}  menuItemResponse
// @Failure      404           {object}  errorResponse
// @Router       /api/menu_item/{menu_item_id} [get]
func (h *MenuItemHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("menu_item_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponse(item))
}

// Update handles PUT /api/menu_item/:menu_item_id.
//
// @Summary      Update a menu item
// @Tags         menu_items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        menu_item_id  path      string                 true  "Menu item id"
// @Param        body          body      updateMenuItemRequest  true  "Fields to update"
// @Success      200           {object}  menuItemResponse
// @Failure      400           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Router       /api/menu_item/{menu_item_id} [put]
func (h *MenuItemHandler) Update(c echo.Context) error {
	var req updateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("menu_item_id"), ports.UpdateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Categories:  req.Categories,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponse(updated))
}

// Delete handles DELETE /api/menu_item/:menu_item_id.
//
// @Summary      Delete a menu item
// @Tags         menu_items
// @Produce      json
// @Security     BearerAuth
// @Param        menu_item_id  path      string  true  "Menu item id"
// @Success      200           {object}  messageResponse
// @Failure      404           {object}  errorResponse
// @Router       /api/menu_item/{menu_item_id} [delete]
func (h *MenuItemHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("menu_item_id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "menu item deleted"})
}

func toMenuItemResponse(item *domain.MenuItem) menuItemResponse {
	return menuItemResponse{
		MenuItemID:  item.MenuItemID,
		Name:        item.Name,
		Description: item.Description,
		Categories:  item.Categories,
	}
}
