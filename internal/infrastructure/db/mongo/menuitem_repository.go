package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stormapp/canteen-api/internal/core/domain"
	"github.com/stormapp/canteen-api/internal/core/ports"
)

const collectionMenuItems = "menu_items"

type MenuItemRepository struct {
	col *mongo.Collection
}

func NewMenuItemRepository(db *mongo.Database) *MenuItemRepository {
	return &MenuItemRepository{col: db.Collection(collectionMenuItems)}
}

func (r *MenuItemRepository) Create(ctx context.Context, m *domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *MenuItemRepository) FindByID(ctx context.Context, menuItemID string) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.MenuItem
	err := r.col.FindOne(ctx, bson.M{"menu_item_id": menuItemID}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, err
	}
	if m.Categories == nil {
		m.Categories = []string{}
	}
	return &m, nil
}

// FindAll returns menu items, restricted to one category name when category
// is non-empty. The filter matches array membership exactly; there is no
// normalization of the category tag. Malformed documents are dropped.
func (r *MenuItemRepository) FindAll(ctx context.Context, category string) ([]domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["categories"] = category
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.MenuItem{}
	for cur.Next(ctx) {
		var m domain.MenuItem
		if err := cur.Decode(&m); err != nil || m.MenuItemID == "" {
			continue
		}
		if m.Categories == nil {
			m.Categories = []string{}
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

func (r *MenuItemRepository) Update(ctx context.Context, menuItemID string, fields ports.MenuItemUpdate) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}
	if fields.Categories != nil {
		set["categories"] = *fields.Categories
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m domain.MenuItem
	err := r.col.FindOneAndUpdate(ctx, bson.M{"menu_item_id": menuItemID}, bson.M{"$set": set}, opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, err
	}
	if m.Categories == nil {
		m.Categories = []string{}
	}
	return &m, nil
}

func (r *MenuItemRepository) Delete(ctx context.Context, menuItemID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"menu_item_id": menuItemID})
	if err != nil {
		return err
	}
	if res.DeletedCount != 1 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}
