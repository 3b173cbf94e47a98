package services

import (
	"context"

	razorpay "github.com/razorpay/razorpay-go"
)

// PaymentGateway creates payment orders with the upstream gateway. The
// returned map is the gateway's order object, passed through to the client
// untouched.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (map[string]interface{}, error)
}

type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *RazorpayGateway) CreateOrder(_ context.Context, amountPaise int64, currency, receipt string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	return g.client.Order.Create(data, nil)
}
