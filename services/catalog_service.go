package services

import (
	"context"
	"fmt"

	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/models"
)

// ICatalogRepository loads the full catalog from storage.
type ICatalogRepository interface {
	LoadAll(ctx context.Context) ([]models.FoodItem, []models.FoodCategory, error)
}

// Catalog is the read-only menu snapshot, loaded once at startup and
// injected into its controller. Immutable after construction, so handlers
// read it without locks.
type Catalog struct {
	items      []models.FoodItem
	categories []models.FoodCategory
}

// LoadCatalog builds the snapshot. Startup fails if the catalog cannot be
// read; serving an empty menu silently would look like data loss.
func LoadCatalog(ctx context.Context, repo ICatalogRepository) (*Catalog, error) {
	items, categories, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load food catalog: %w", err)
	}
	return &Catalog{items: items, categories: categories}, nil
}

func (c *Catalog) Items() []models.FoodItem {
	return c.items
}

func (c *Catalog) Categories() []models.FoodCategory {
	return c.categories
}
