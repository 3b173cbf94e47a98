package repository

import (
	"context"

	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogRepository struct {
	items      *mongo.Collection
	categories *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{
		items:      db.Collection("food_items"),
		categories: db.Collection("food_categories"),
	}
}

// LoadAll reads the full catalog. Called once at startup to build the
// read-only snapshot handed to the food controller.
func (r *CatalogRepository) LoadAll(ctx context.Context) ([]models.FoodItem, []models.FoodCategory, error) {
	cursor, err := r.items.Find(ctx, bson.M{})
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	var items []models.FoodItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, nil, err
	}

	catCursor, err := r.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, nil, err
	}
	defer catCursor.Close(ctx)

	var categories []models.FoodCategory
	if err = catCursor.All(ctx, &categories); err != nil {
		return nil, nil, err
	}
	return items, categories, nil
}
