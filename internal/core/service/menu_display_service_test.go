package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stormapp/canteen-api/internal/core/domain"
	"github.com/stormapp/canteen-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubSelectionRepo struct {
	byDate    map[string][]domain.UserSelection // preserves store order
	byUser    map[string]*domain.UserSelection  // key: userID + "|" + date
	findCalls int
}

func newStubSelectionRepo() *stubSelectionRepo {
	return &stubSelectionRepo{
		byDate: make(map[string][]domain.UserSelection),
		byUser: make(map[string]*domain.UserSelection),
	}
}

func (r *stubSelectionRepo) FindByUserAndDate(_ context.Context, userID, date string) (*domain.UserSelection, error) {
	r.findCalls++
	sel, ok := r.byUser[userID+"|"+date]
	if !ok {
		return nil, domain.ErrSelectionNotFound
	}
	clone := *sel
	return &clone, nil
}

func (r *stubSelectionRepo) FindByDate(_ context.Context, date string) ([]domain.UserSelection, error) {
	r.findCalls++
	return r.byDate[date], nil
}

// Upsert mirrors the real Mongo behaviour: a second write for the same
// (user, date) keeps the stored id and replaces the selections wholesale.
func (r *stubSelectionRepo) Upsert(_ context.Context, sel *domain.UserSelection) (*domain.UserSelection, bool, error) {
	key := sel.UserID + "|" + sel.Date
	if existing, ok := r.byUser[key]; ok {
		existing.Selections = sel.Selections
		clone := *existing
		return &clone, false, nil
	}
	clone := *sel
	r.byUser[key] = &clone
	r.byDate[sel.Date] = append(r.byDate[sel.Date], clone)
	out := clone
	return &out, true, nil
}

type stubMenuItemRepo struct {
	items map[string]*domain.MenuItem
}

func newStubMenuItemRepo() *stubMenuItemRepo {
	return &stubMenuItemRepo{items: make(map[string]*domain.MenuItem)}
}

func (r *stubMenuItemRepo) Create(_ context.Context, m *domain.MenuItem) error {
	clone := *m
	r.items[m.MenuItemID] = &clone
	return nil
}

func (r *stubMenuItemRepo) FindByID(_ context.Context, menuItemID string) (*domain.MenuItem, error) {
	m, ok := r.items[menuItemID]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMenuItemRepo) FindAll(_ context.Context, category string) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, m := range r.items {
		if category != "" {
			tagged := false
			for _, c := range m.Categories {
				if c == category {
					tagged = true
					break
				}
			}
			if !tagged {
				continue
			}
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMenuItemRepo) Update(_ context.Context, menuItemID string, fields ports.MenuItemUpdate) (*domain.MenuItem, error) {
	m, ok := r.items[menuItemID]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	if fields.Name != nil {
		m.Name = *fields.Name
	}
	if fields.Description != nil {
		m.Description = *fields.Description
	}
	if fields.Categories != nil {
		m.Categories = *fields.Categories
	}
	clone := *m
	return &clone, nil
}

func (r *stubMenuItemRepo) Delete(_ context.Context, menuItemID string) error {
	if _, ok := r.items[menuItemID]; !ok {
		return domain.ErrMenuItemNotFound
	}
	delete(r.items, menuItemID)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func seedItem(repo *stubMenuItemRepo, id, name string) {
	repo.items[id] = &domain.MenuItem{
		MenuItemID: id,
		Name:       name,
		Categories: []string{},
	}
}

func selectionDoc(userID, date string, picks map[string]string) domain.UserSelection {
	return domain.UserSelection{
		UserSelectionID: "sel_" + userID,
		UserID:          userID,
		Date:            date,
		Selections:      picks,
	}
}

// ---------------------------------------------------------------------------
// DailyDisplay tests
// ---------------------------------------------------------------------------

func TestMenuDisplay_PluralityWinnerPerCourse(t *testing.T) {
	selections := newStubSelectionRepo()
	items := newStubMenuItemRepo()
	seedItem(items, "item_a", "Tomato Soup")
	seedItem(items, "item_b", "Lentil Soup")

	date := "2026-03-02"
	selections.byDate[date] = []domain.UserSelection{
		selectionDoc("u1", date, map[string]string{"soup": "item_a"}),
		selectionDoc("u2", date, map[string]string{"soup": "item_a"}),
		selectionDoc("u3", date, map[string]string{"soup": "item_b"}),
	}

	svc := NewMenuDisplayService(selections, items, discardLogger)
	display, err := svc.DailyDisplay(context.Background(), date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	winner := display.MenuItemsByCourse["soup"]
	if winner == nil {
		t.Fatal("expected a winner for soup")
	}
	if winner.MenuItemID != "item_a" {
		t.Errorf("expected item_a (2 votes beats 1), got %s", winner.MenuItemID)
	}
	if winner.Name != "Tomato Soup" {
		t.Errorf("winner not resolved to full record: %q", winner.Name)
	}
}

func TestMenuDisplay_TieResolvesToFirstSeen(t *testing.T) {
	selections := newStubSelectionRepo()
	items := newStubMenuItemRepo()
	seedItem(items, "item_a", "Tomato Soup")
	seedItem(items, "item_b", "Lentil Soup")

	date := "2026-03-02"
	selections.byDate[date] = []domain.UserSelection{
		selectionDoc("u1", date, map[string]string{"soup": "item_a"}),
		selectionDoc("u2", date, map[string]string{"soup": "item_b"}),
	}

	svc := NewMenuDisplayService(selections, items, discardLogger)

	// Run repeatedly: the result must not depend on map iteration order.
	for i := 0; i < 20; i++ {
		display, err := svc.DailyDisplay(context.Background(), date)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		winner := display.MenuItemsByCourse["soup"]
		if winner == nil || winner.MenuItemID != "item_a" {
			t.Fatalf("tie must resolve to the first-seen item, got %+v", winner)
		}
	}
}

func TestMenuDisplay_UnvotedCourseAbsent(t *testing.T) {
	selections := newStubSelectionRepo()
	items := newStubMenuItemRepo()
	seedItem(items, "item_a", "Tomato Soup")

	date := "2026-03-02"
	selections.byDate[date] = []domain.UserSelection{
		selectionDoc("u1", date, map[string]string{"soup": "item_a"}),
	}

	svc := NewMenuDisplayService(selections, items, discardLogger)
	display, err := svc.DailyDisplay(context.Background(), date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, present := display.MenuItemsByCourse["dessert"]; present {
		t.Error("a course nobody voted for must be absent, not nil")
	}
	if len(display.MenuItemsByCourse) != 1 {
		t.Errorf("expected exactly 1 course, got %d", len(display.MenuItemsByCourse))
	}
}

func TestMenuDisplay_DeletedWinnerYieldsNull(t *testing.T) {
	selections := newStubSelectionRepo()
	items := newStubMenuItemRepo() // item_gone never seeded

	date := "2026-03-02"
	selections.byDate[date] = []domain.UserSelection{
		selectionDoc("u1", date, map[string]string{"main": "item_gone"}),
	}

	svc := NewMenuDisplayService(selections, items, discardLogger)
	display, err := svc.DailyDisplay(context.Background(), date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	winner, present := display.MenuItemsByCourse["main"]
	if !present {
		t.Fatal("course with votes must stay in the output")
	}
	if winner != nil {
		t.Errorf("deleted winner must map to nil, got %+v", winner)
	}
}

func TestMenuDisplay_EmptyDayReturnsEmptyMap(t *testing.T) {
	svc := NewMenuDisplayService(newStubSelectionRepo(), newStubMenuItemRepo(), discardLogger)

	display, err := svc.DailyDisplay(context.Background(), "2026-03-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if display.Date != "2026-03-02" {
		t.Errorf("date must echo the input, got %s", display.Date)
	}
	if len(display.MenuItemsByCourse) != 0 {
		t.Errorf("expected empty course map, got %d entries", len(display.MenuItemsByCourse))
	}
}

func TestMenuDisplay_RejectsBadDatesBeforeStoreAccess(t *testing.T) {
	selections := newStubSelectionRepo()
	svc := NewMenuDisplayService(selections, newStubMenuItemRepo(), discardLogger)

	for _, date := range []string{"", "2024/01/01", "2024-1-1", "2024-13-40", "not-a-date"} {
		if _, err := svc.DailyDisplay(context.Background(), date); err != domain.ErrInvalidDate {
			t.Errorf("date %q: expected ErrInvalidDate, got %v", date, err)
		}
	}
	if selections.findCalls != 0 {
		t.Errorf("invalid dates must not reach the store, got %d calls", selections.findCalls)
	}
}
