package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stormapp/canteen-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails when it is missing: a non-empty user id proves the middleware
// ran for this request.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ := c.Get("role").(string)
	email, _ := c.Get("email").(string)
	name, _ := c.Get("name").(string)

	return domain.Identity{ID: id, Role: role, Email: email, Name: name}, nil
}
