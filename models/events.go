package models

import "time"

// OrderPlacedEvent is published to the message bus after an order batch is
// durably appended.
type OrderPlacedEvent struct {
	Type      string    `json:"type"`
	Email     string    `json:"email"`
	OrderDate string    `json:"order_date"`
	ItemCount int       `json:"item_count"`
	Timestamp time.Time `json:"timestamp"`
}
