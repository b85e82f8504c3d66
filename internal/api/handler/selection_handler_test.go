package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stormapp/canteen-api/internal/core/domain"
)

type stubSelectionService struct {
	getFn    func(ctx context.Context, userID, date string) (*domain.UserSelection, error)
	submitFn func(ctx context.Context, userID, date string, selections map[string]string) (*domain.UserSelection, bool, error)
}

func (s *stubSelectionService) GetForDate(ctx context.Context, userID, date string) (*domain.UserSelection, error) {
	return s.getFn(ctx, userID, date)
}

func (s *stubSelectionService) Submit(ctx context.Context, userID, date string, selections map[string]string) (*domain.UserSelection, bool, error) {
	return s.submitFn(ctx, userID, date, selections)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authedContext(c echo.Context, userID string) {
	c.Set("user_id", userID)
	c.Set("role", "user")
	c.Set("email", userID+"@example.com")
	c.Set("name", "Test User")
}

func TestSelectionHandler_Submit_Created(t *testing.T) {
	stub := &stubSelectionService{
		submitFn: func(_ context.Context, userID, date string, selections map[string]string) (*domain.UserSelection, bool, error) {
			if userID != "user_1" {
				t.Fatalf("user id must come from the context, got %q", userID)
			}
			return &domain.UserSelection{
				UserSelectionID: "sel_1",
				UserID:          userID,
				Date:            date,
				Selections:      selections,
			}, true, nil
		},
	}
	h := NewSelectionHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/user_selections",
		`{"date":"2026-03-02","selections":{"soup":"item_a"}}`)
	authedContext(c, "user_1")

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for a first submission, got %d", rec.Code)
	}

	var resp selectionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.UserSelectionID != "sel_1" || resp.Selections["soup"] != "item_a" {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestSelectionHandler_Submit_Updated(t *testing.T) {
	stub := &stubSelectionService{
		submitFn: func(_ context.Context, userID, date string, selections map[string]string) (*domain.UserSelection, bool, error) {
			return &domain.UserSelection{
				UserSelectionID: "sel_1",
				UserID:          userID,
				Date:            date,
				Selections:      selections,
			}, false, nil
		},
	}
	h := NewSelectionHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/user_selections",
		`{"date":"2026-03-02","selections":{"soup":"item_b"}}`)
	authedContext(c, "user_1")

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a resubmission, got %d", rec.Code)
	}
}

func TestSelectionHandler_Submit_MissingBodyFields(t *testing.T) {
	stub := &stubSelectionService{
		submitFn: func(context.Context, string, string, map[string]string) (*domain.UserSelection, bool, error) {
			t.Fatalf("service must not be called")
			return nil, false, nil
		},
	}
	h := NewSelectionHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/user_selections", `{"selections":{"soup":"item_a"}}`)
	authedContext(c, "user_1")

	err := h.Submit(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestSelectionHandler_Submit_Unauthenticated(t *testing.T) {
	h := NewSelectionHandler(&stubSelectionService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/user_selections",
		`{"date":"2026-03-02","selections":{"soup":"item_a"}}`)

	err := h.Submit(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without context identity, got %v", err)
	}
}

func TestSelectionHandler_Get_RequiresDateQuery(t *testing.T) {
	h := NewSelectionHandler(&stubSelectionService{
		getFn: func(context.Context, string, string) (*domain.UserSelection, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodGet, "/api/user_selections", "")
	authedContext(c, "user_1")

	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without date query, got %v", err)
	}
}

func TestSelectionHandler_Get_ScopedToCaller(t *testing.T) {
	h := NewSelectionHandler(&stubSelectionService{
		getFn: func(_ context.Context, userID, date string) (*domain.UserSelection, error) {
			if userID != "user_1" || date != "2026-03-02" {
				t.Fatalf("unexpected args: %s %s", userID, date)
			}
			return &domain.UserSelection{
				UserSelectionID: "sel_1",
				UserID:          userID,
				Date:            date,
				Selections:      map[string]string{"soup": "item_a"},
			}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodGet, "/api/user_selections?date=2026-03-02", "")
	authedContext(c, "user_1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
