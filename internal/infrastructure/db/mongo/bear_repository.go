package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
)

const collectionBears = "bears"

type BearRepository struct {
	col *mongo.Collection
}

func NewBearRepository(db *mongo.Database) *BearRepository {
	return &BearRepository{col: db.Collection(collectionBears)}
}

// FindByID retrieves a bear by its id.
func (r *BearRepository) FindByID(ctx context.Context, id string) (*domain.Bear, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Bear
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBearNotFound
		}
		return nil, storeErr("find_bear", err)
	}
	return &b, nil
}

// List returns every bear in registration order.
func (r *BearRepository) List(ctx context.Context) ([]*domain.Bear, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeErr("list_bears", err)
	}
	defer cursor.Close(ctx)

	bears := make([]*domain.Bear, 0)
	if err := cursor.All(ctx, &bears); err != nil {
		return nil, storeErr("list_bears", err)
	}
	return bears, nil
}

// Create inserts a new bear document.
func (r *BearRepository) Create(ctx context.Context, b *domain.Bear) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, b); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrBearExists
		}
		return storeErr("insert_bear", err)
	}
	return nil
}
