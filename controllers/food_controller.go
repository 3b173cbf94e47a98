package controllers

import (
	"net/http"

	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/services"
	"github.com/gin-gonic/gin"
)

// FoodController serves the catalog snapshot. The snapshot is immutable
// after startup, so this handler never touches storage.
type FoodController struct {
	catalog *services.Catalog
}

func NewFoodController(catalog *services.Catalog) *FoodController {
	return &FoodController{catalog: catalog}
}

// GetFoodData returns the [items, categories] pair the menu page renders.
func (fc *FoodController) GetFoodData(c *gin.Context) {
	c.JSON(http.StatusOK, []interface{}{fc.catalog.Items(), fc.catalog.Categories()})
}
