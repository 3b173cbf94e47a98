package services

import (
	"context"
	"time"

	apperrors "github.com/Utkarsh-Jain2199/Meal-Express-Backend/common/errors"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/models"
	"go.uber.org/zap"
)

var (
	ErrMissingEmail     = apperrors.MalformedInput("Email is required")
	ErrMissingOrderDate = apperrors.MalformedInput("Order date is required")
)

// IOrderRepository is the persistence collaborator for order histories.
// AppendBatch must be a single atomic upsert-push; the ledger never does a
// read-modify-write.
type IOrderRepository interface {
	AppendBatch(ctx context.Context, email string, batch models.OrderBatch) error
	FindByEmail(ctx context.Context, email string) (*models.OrderRecord, error)
}

// OrderEventPublisher emits order-placed events to the message bus.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error
}

// OrderService appends order batches to per-email histories and reads them
// back. All writes go through the repository's atomic append.
type OrderService struct {
	orders IOrderRepository
	events OrderEventPublisher
	logger *zap.Logger
}

// NewOrderService wires the ledger. events may be nil when no broker is
// configured.
func NewOrderService(orders IOrderRepository, events OrderEventPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, events: events, logger: logger}
}

// PlaceOrder appends one batch to the user's history, creating the record
// on first order. Both the create and the append are the same atomic
// upsert, so concurrent orders from one user cannot lose each other.
func (s *OrderService) PlaceOrder(ctx context.Context, email, orderDate string, items []models.CartItem) error {
	if email == "" {
		return ErrMissingEmail
	}
	if orderDate == "" {
		return ErrMissingOrderDate
	}
	if len(items) == 0 {
		return ErrEmptyCart
	}

	batch := models.OrderBatch{OrderDate: orderDate, Items: items}
	if err := s.orders.AppendBatch(ctx, email, batch); err != nil {
		return apperrors.Storage(err)
	}

	if s.events != nil {
		event := models.OrderPlacedEvent{
			Type:      "order_placed",
			Email:     email,
			OrderDate: orderDate,
			ItemCount: len(items),
			Timestamp: time.Now().UTC(),
		}
		// Event publishing is best effort; the order is already durable.
		if err := s.events.PublishOrderPlaced(ctx, event); err != nil {
			s.logger.Warn("failed to publish order event",
				zap.String("email", email), zap.Error(err))
		}
	}
	return nil
}

// GetOrders returns the order history for an email. A nil record means the
// user has no orders yet; that is a normal state, not a failure.
func (s *OrderService) GetOrders(ctx context.Context, email string) (*models.OrderRecord, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}

	record, err := s.orders.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if record == nil || len(record.Batches) == 0 {
		return nil, nil
	}
	return record, nil
}
