package controllers

import (
	"context"
	"net/http"

	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/models"
	"github.com/gin-gonic/gin"
)

// IOrderService is the ledger surface the controller needs.
type IOrderService interface {
	PlaceOrder(ctx context.Context, email, orderDate string, items []models.CartItem) error
	GetOrders(ctx context.Context, email string) (*models.OrderRecord, error)
}

type OrderController struct {
	orders IOrderService
}

func NewOrderController(orders IOrderService) *OrderController {
	return &OrderController{orders: orders}
}

// CreateOrder appends one order batch to the caller's history.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		Email     string            `json:"email"`
		OrderDate string            `json:"order_date"`
		Items     []models.CartItem `json:"order_data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if err := oc.orders.PlaceOrder(c.Request.Context(), req.Email, req.OrderDate, req.Items); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetMyOrders returns the caller's order history. No history is a normal
// response, not an error.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	record, err := oc.orders.GetOrders(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	if record == nil {
		c.JSON(http.StatusOK, gin.H{
			"orderData": nil,
			"hasOrders": false,
			"message":   "No orders found for this user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderData": record,
		"hasOrders": true,
		"message":   "Orders found successfully",
	})
}
