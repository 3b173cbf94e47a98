package services

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/Utkarsh-Jain2199/Meal-Express-Backend/common/errors"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// --- Mocks ---

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) AppendBatch(ctx context.Context, email string, batch models.OrderBatch) error {
	args := m.Called(ctx, email, batch)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByEmail(ctx context.Context, email string) (*models.OrderRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderRecord), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var testItems = []models.CartItem{{Name: "Margherita Pizza", Price: 250, Qty: 1}}

// --- Tests ---

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("appends a single batch atomically", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, nil, zap.NewNop())

		expectedBatch := models.OrderBatch{OrderDate: "28/08/2026", Items: testItems}
		mockRepo.On("AppendBatch", ctx, "user@example.com", expectedBatch).Return(nil).Once()

		err := svc.PlaceOrder(ctx, "user@example.com", "28/08/2026", testItems)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("two sequential appends preserve both batches", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, nil, zap.NewNop())

		mockRepo.On("AppendBatch", ctx, "user@example.com", mock.Anything).Return(nil).Twice()

		assert.NoError(t, svc.PlaceOrder(ctx, "user@example.com", "27/08/2026", testItems))
		assert.NoError(t, svc.PlaceOrder(ctx, "user@example.com", "28/08/2026", testItems))

		// Each order is its own append; the ledger never rewrites history.
		mockRepo.AssertNumberOfCalls(t, "AppendBatch", 2)
	})

	t.Run("rejects missing email, date and empty cart", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, nil, zap.NewNop())

		assert.ErrorIs(t, svc.PlaceOrder(ctx, "", "28/08/2026", testItems), ErrMissingEmail)
		assert.ErrorIs(t, svc.PlaceOrder(ctx, "user@example.com", "", testItems), ErrMissingOrderDate)
		assert.ErrorIs(t, svc.PlaceOrder(ctx, "user@example.com", "28/08/2026", nil), ErrEmptyCart)
		mockRepo.AssertNotCalled(t, "AppendBatch")
	})

	t.Run("persistence failure surfaces as storage error", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, nil, zap.NewNop())

		mockRepo.On("AppendBatch", ctx, "user@example.com", mock.Anything).
			Return(errors.New("connection reset")).Once()

		err := svc.PlaceOrder(ctx, "user@example.com", "28/08/2026", testItems)
		var appErr *apperrors.Error
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.KindStorage, appErr.Kind)
	})

	t.Run("publishes an event after a durable append", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockEvents := new(MockEventPublisher)
		svc := NewOrderService(mockRepo, mockEvents, zap.NewNop())

		mockRepo.On("AppendBatch", ctx, "user@example.com", mock.Anything).Return(nil).Once()
		mockEvents.On("PublishOrderPlaced", ctx, mock.MatchedBy(func(e models.OrderPlacedEvent) bool {
			return e.Type == "order_placed" && e.Email == "user@example.com" && e.ItemCount == 1
		})).Return(nil).Once()

		assert.NoError(t, svc.PlaceOrder(ctx, "user@example.com", "28/08/2026", testItems))
		mockEvents.AssertExpectations(t)
	})

	t.Run("publish failure does not fail the order", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockEvents := new(MockEventPublisher)
		svc := NewOrderService(mockRepo, mockEvents, zap.NewNop())

		mockRepo.On("AppendBatch", ctx, "user@example.com", mock.Anything).Return(nil).Once()
		mockEvents.On("PublishOrderPlaced", ctx, mock.Anything).Return(errors.New("broker down")).Once()

		assert.NoError(t, svc.PlaceOrder(ctx, "user@example.com", "28/08/2026", testItems))
	})
}

func TestGetOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the record with batches in order", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, nil, zap.NewNop())

		record := &models.OrderRecord{
			Email: "user@example.com",
			Batches: []models.OrderBatch{
				{OrderDate: "27/08/2026", Items: testItems},
				{OrderDate: "28/08/2026", Items: testItems},
			},
		}
		mockRepo.On("FindByEmail", ctx, "user@example.com").Return(record, nil).Once()

		got, err := svc.GetOrders(ctx, "user@example.com")
		assert.NoError(t, err)
		assert.Len(t, got.Batches, 2)
		assert.Equal(t, "27/08/2026", got.Batches[0].OrderDate)
		assert.Equal(t, "28/08/2026", got.Batches[1].OrderDate)
	})

	t.Run("unknown email is not an error", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, nil, zap.NewNop())

		mockRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, nil).Once()

		got, err := svc.GetOrders(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty history reads as no orders", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, nil, zap.NewNop())

		mockRepo.On("FindByEmail", ctx, "user@example.com").
			Return(&models.OrderRecord{Email: "user@example.com"}, nil).Once()

		got, err := svc.GetOrders(ctx, "user@example.com")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("persistence failure surfaces as storage error", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, nil, zap.NewNop())

		mockRepo.On("FindByEmail", ctx, "user@example.com").
			Return(nil, errors.New("connection reset")).Once()

		_, err := svc.GetOrders(ctx, "user@example.com")
		var appErr *apperrors.Error
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.KindStorage, appErr.Kind)
	})
}
