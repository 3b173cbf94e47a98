package controllers

import (
	"context"
	"net/http"
	"testing"

	apperrors "github.com/Utkarsh-Jain2199/Meal-Express-Backend/common/errors"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) PlaceOrder(ctx context.Context, email, orderDate string, items []models.CartItem) error {
	args := m.Called(ctx, email, orderDate, items)
	return args.Error(0)
}

func (m *MockOrderService) GetOrders(ctx context.Context, email string) (*models.OrderRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderRecord), args.Error(1)
}

func newOrderRouter(svc IOrderService) *gin.Engine {
	oc := NewOrderController(svc)
	router := gin.New()
	router.POST("/order", oc.CreateOrder)
	router.POST("/my-orders", oc.GetMyOrders)
	return router
}

func TestCreateOrderEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("appends the batch and reports success", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		mockSvc.On("PlaceOrder", mock.Anything, "user@example.com", "28/08/2026",
			mock.MatchedBy(func(items []models.CartItem) bool {
				return len(items) == 1 && items[0].Name == "Masala Dosa"
			})).Return(nil).Once()

		router := newOrderRouter(mockSvc)
		recorder := postJSON(router, "/order", `{
			"email": "user@example.com",
			"order_date": "28/08/2026",
			"order_data": [{"name":"Masala Dosa","price":120,"qty":1}]
		}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"success":true`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("storage failure yields 500 with a safe message", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		mockSvc.On("PlaceOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(apperrors.Storage(assert.AnError)).Once()

		router := newOrderRouter(mockSvc)
		recorder := postJSON(router, "/order", `{
			"email": "user@example.com",
			"order_date": "28/08/2026",
			"order_data": [{"name":"Masala Dosa","price":120,"qty":1}]
		}`)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
	})
}

func TestGetMyOrdersEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the history", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		mockSvc.On("GetOrders", mock.Anything, "user@example.com").Return(&models.OrderRecord{
			Email: "user@example.com",
			Batches: []models.OrderBatch{
				{OrderDate: "28/08/2026", Items: []models.CartItem{{Name: "Masala Dosa", Price: 120, Qty: 1}}},
			},
		}, nil).Once()

		router := newOrderRouter(mockSvc)
		recorder := postJSON(router, "/my-orders", `{"email":"user@example.com"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"hasOrders":true`)
		assert.Contains(t, recorder.Body.String(), "Masala Dosa")
	})

	t.Run("no orders is a normal 200, not an error", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		mockSvc.On("GetOrders", mock.Anything, "nobody@example.com").Return(nil, nil).Once()

		router := newOrderRouter(mockSvc)
		recorder := postJSON(router, "/my-orders", `{"email":"nobody@example.com"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"hasOrders":false`)
		assert.Contains(t, recorder.Body.String(), "No orders found for this user")
	})
}
