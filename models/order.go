package models

// CartItem is one line item submitted by the client. The server never
// trusts a submitted total; totals are recomputed from price and qty with
// exact decimal arithmetic in the payment verifier.
type CartItem struct {
	ID    string  `bson:"id,omitempty" json:"id,omitempty"`
	Name  string  `bson:"name,omitempty" json:"name,omitempty"`
	Price float64 `bson:"price" json:"price"`
	Qty   int64   `bson:"qty" json:"qty"`
	Size  string  `bson:"size,omitempty" json:"size,omitempty"`
}

// OrderBatch is one checkout: its date plus the line items, appended to a
// user's history as a unit.
type OrderBatch struct {
	OrderDate string     `bson:"order_date" json:"order_date"`
	Items     []CartItem `bson:"items" json:"items"`
}

// OrderRecord is the per-email order history document. Batches are
// append-only; the record is created on the first order and never deleted.
type OrderRecord struct {
	Email   string       `bson:"email" json:"email"`
	Batches []OrderBatch `bson:"order_data" json:"order_data"`
}
