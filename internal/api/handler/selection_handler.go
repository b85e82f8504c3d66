package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stormapp/canteen-api/internal/api/metrics"
	"github.com/stormapp/canteen-api/internal/core/domain"
	"github.com/stormapp/canteen-api/internal/core/ports"
)

// SelectionHandler handles the caller's own date-scoped meal selections.
type SelectionHandler struct {
	service ports.SelectionService
}

func NewSelectionHandler(service ports.SelectionService) *SelectionHandler {
	return &SelectionHandler{service: service}
}

// Get handles GET /api/user_selections?date=YYYY-MM-DD.
//
// @Summary      Get the caller's selections for a date
// @Tags         selections
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  true  "Calendar day (YYYY-MM-DD)"
// @Success      200   {object}  selectionResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/user_selections [get]
func (h *SelectionHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date query parameter is required")
	}

	sel, err := h.service.GetForDate(c.Request().Context(), identity.ID, date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSelectionResponse(sel))
}

// Submit handles POST /api/user_selections. The first submission for a
// (user, date) answers 201; later ones answer 200 with the same record id
// and a wholesale-replaced selections map.
//
// @Summary      Submit the caller's selections for a date
// @Tags         selections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitSelectionsRequest  true  "Date and per-course choices"
// @Success      200   {object}  selectionResponse
// @Success      201   {object}  selectionResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/user_selections [post]
func (h *SelectionHandler) Submit(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitSelectionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	saved, created, err := h.service.Submit(c.Request().Context(), identity.ID, req.Date, req.Selections)
	if err != nil {
		return err
	}

	status := http.StatusOK
	result := "updated"
	if created {
		status = http.StatusCreated
		result = "created"
	}
	metrics.SelectionsSubmittedTotal.WithLabelValues(result).Inc()

	return c.JSON(status, toSelectionResponse(saved))
}

func toSelectionResponse(sel *domain.UserSelection) selectionResponse {
	return selectionResponse{
		UserSelectionID: sel.UserSelectionID,
		UserID:          sel.UserID,
		Date:            sel.Date,
		Selections:      sel.Selections,
	}
}
