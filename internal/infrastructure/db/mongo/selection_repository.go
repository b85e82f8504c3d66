package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stormapp/canteen-api/internal/core/domain"
)

const collectionSelections = "user_selections"

type SelectionRepository struct {
	col *mongo.Collection
}

func NewSelectionRepository(db *mongo.Database) *SelectionRepository {
	return &SelectionRepository{col: db.Collection(collectionSelections)}
}

func (r *SelectionRepository) FindByUserAndDate(ctx context.Context, userID, date string) (*domain.UserSelection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var sel domain.UserSelection
	err := r.col.FindOne(ctx, bson.M{"user_id": userID, "date": date}).Decode(&sel)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSelectionNotFound
		}
		return nil, err
	}
	return &sel, nil
}

// FindByDate returns all selections for one calendar day in natural store
// order. The tie-break of the daily aggregation depends on this order being
// stable between reads. Documents that fail to decode are dropped.
func (r *SelectionRepository) FindByDate(ctx context.Context, date string) ([]domain.UserSelection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.UserSelection{}
	for cur.Next(ctx) {
		var sel domain.UserSelection
		if err := cur.Decode(&sel); err != nil {
			continue
		}
		out = append(out, sel)
	}
	return out, cur.Err()
}

// Upsert inserts sel, or replaces the selections map of the existing
// (user_id, date) document while keeping its user_selection_id. The whole
// decision happens in one FindOneAndUpdate against the unique index, so two
// concurrent submissions cannot both create a record. Whether an insert
// happened is visible in which user_selection_id came back.
func (r *SelectionRepository) Upsert(ctx context.Context, sel *domain.UserSelection) (*domain.UserSelection, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": sel.UserID, "date": sel.Date}
	update := bson.M{
		"$set": bson.M{"selections": sel.Selections},
		"$setOnInsert": bson.M{
			"user_selection_id": sel.UserSelectionID,
			"user_id":           sel.UserID,
			"date":              sel.Date,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved domain.UserSelection
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, false, err
	}

	created := saved.UserSelectionID == sel.UserSelectionID
	return &saved, created, nil
}

// EnsureIndexes creates the uniqueness constraint backing the at-most-one
// selection per (user_id, date) invariant.
func (r *SelectionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
