package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_razorpay_secret"

func signPayment(t *testing.T, secret, orderID, paymentID string) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	verifier := NewPaymentVerifier(testSecret)

	t.Run("valid signature accepted", func(t *testing.T) {
		sig := signPayment(t, testSecret, "order_123", "pay_456")
		assert.NoError(t, verifier.VerifySignature("order_123", "pay_456", sig))
	})

	t.Run("tampered signature rejected", func(t *testing.T) {
		sig := signPayment(t, testSecret, "order_123", "pay_456")
		tampered := "00" + sig[2:]
		err := verifier.VerifySignature("order_123", "pay_456", tampered)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("signature for different order rejected", func(t *testing.T) {
		sig := signPayment(t, testSecret, "order_999", "pay_456")
		err := verifier.VerifySignature("order_123", "pay_456", sig)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("signature under wrong secret rejected", func(t *testing.T) {
		sig := signPayment(t, "some_other_secret", "order_123", "pay_456")
		err := verifier.VerifySignature("order_123", "pay_456", sig)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("non-hex signature rejected", func(t *testing.T) {
		err := verifier.VerifySignature("order_123", "pay_456", "not-hex!")
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("missing fields fail closed", func(t *testing.T) {
		sig := signPayment(t, testSecret, "order_123", "pay_456")
		assert.ErrorIs(t, verifier.VerifySignature("", "pay_456", sig), ErrMissingPaymentFields)
		assert.ErrorIs(t, verifier.VerifySignature("order_123", "", sig), ErrMissingPaymentFields)
		assert.ErrorIs(t, verifier.VerifySignature("order_123", "pay_456", ""), ErrMissingPaymentFields)
	})
}

func TestComputeTotal(t *testing.T) {
	t.Run("sums price times qty exactly", func(t *testing.T) {
		items := []models.CartItem{
			{Name: "Paneer Tikka", Price: 100, Qty: 2},
			{Name: "Butter Naan", Price: 40.50, Qty: 3},
		}
		total, err := ComputeTotal(items)
		assert.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("321.5")), "got %s", total)
	})

	t.Run("fractional prices stay exact", func(t *testing.T) {
		items := []models.CartItem{{Price: 99.99, Qty: 3}}
		total, err := ComputeTotal(items)
		assert.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("299.97")), "got %s", total)
	})

	t.Run("single item price delta moves total by that delta", func(t *testing.T) {
		base := []models.CartItem{{Price: 100, Qty: 2}, {Price: 50, Qty: 1}}
		bumped := []models.CartItem{{Price: 110, Qty: 2}, {Price: 50, Qty: 1}}

		baseTotal, err := ComputeTotal(base)
		assert.NoError(t, err)
		bumpedTotal, err := ComputeTotal(bumped)
		assert.NoError(t, err)

		delta := bumpedTotal.Sub(baseTotal)
		assert.True(t, delta.Equal(decimal.NewFromInt(20)), "got %s", delta)
	})

	t.Run("empty cart rejected", func(t *testing.T) {
		_, err := ComputeTotal(nil)
		assert.ErrorIs(t, err, ErrEmptyCart)

		_, err = ComputeTotal([]models.CartItem{})
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("malformed items reject the whole cart", func(t *testing.T) {
		_, err := ComputeTotal([]models.CartItem{{Price: 100, Qty: 0}})
		assert.ErrorIs(t, err, ErrMalformedItem)

		_, err = ComputeTotal([]models.CartItem{{Price: -5, Qty: 1}})
		assert.ErrorIs(t, err, ErrMalformedItem)

		_, err = ComputeTotal([]models.CartItem{{Price: 100, Qty: 2}, {Price: 50, Qty: -1}})
		assert.ErrorIs(t, err, ErrMalformedItem)
	})
}

func TestAmountPaise(t *testing.T) {
	total, err := ComputeTotal([]models.CartItem{{Price: 100, Qty: 2}})
	assert.NoError(t, err)
	assert.Equal(t, int64(20000), AmountPaise(total))

	total, err = ComputeTotal([]models.CartItem{{Price: 99.99, Qty: 1}})
	assert.NoError(t, err)
	assert.Equal(t, int64(9999), AmountPaise(total))
}

func TestValidateOrderMeta(t *testing.T) {
	tests := []struct {
		name      string
		orderName string
		mobile    string
		wantErr   error
	}{
		{"valid", "Utkarsh", "9876543210", nil},
		{"blank name", "   ", "9876543210", ErrMissingName},
		{"blank mobile", "Utkarsh", "  ", ErrMissingMobile},
		{"mobile too short", "Utkarsh", "12345", ErrInvalidMobile},
		{"mobile too long", "Utkarsh", "98765432101", ErrInvalidMobile},
		{"mobile with letters", "Utkarsh", "98765abc10", ErrInvalidMobile},
		{"mobile with surrounding spaces", "Utkarsh", " 9876543210 ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrderMeta(tt.orderName, tt.mobile)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
