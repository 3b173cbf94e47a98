package repository

import (
	"context"
	"errors"

	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection("orders"),
	}
}

// AppendBatch pushes one order batch onto the user's history as a single
// upsert. The invariant here is atomicity: no separate existence check, so
// concurrent appends for the same email cannot lose each other.
func (r *OrderRepository) AppendBatch(ctx context.Context, email string, batch models.OrderBatch) error {
	filter := bson.M{"email": email}
	update := bson.M{
		"$push":        bson.M{"order_data": batch},
		"$setOnInsert": bson.M{"email": email},
	}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// FindByEmail returns the order record for an email, or (nil, nil) when the
// user has never ordered. Absence is a normal state, not an error.
func (r *OrderRepository) FindByEmail(ctx context.Context, email string) (*models.OrderRecord, error) {
	var record models.OrderRecord
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
