package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	apperrors "github.com/Utkarsh-Jain2199/Meal-Express-Backend/common/errors"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/models"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart            = apperrors.MalformedInput("Cart items are required")
	ErrMalformedItem        = apperrors.MalformedInput("Cart contains an invalid item")
	ErrMissingPaymentFields = apperrors.MalformedInput("Payment order id, payment id and signature are required")
	ErrInvalidSignature     = apperrors.SignatureMismatch("Invalid signature")
	ErrMissingName          = apperrors.ValidationFailed("Order name is required")
	ErrMissingMobile        = apperrors.ValidationFailed("Mobile number is required")
	ErrInvalidMobile        = apperrors.ValidationFailed("Mobile number must be exactly 10 digits and contain only numbers")
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// PaymentVerifier validates gateway callbacks against the server-held
// secret. Stateless; safe for concurrent use.
type PaymentVerifier struct {
	secret []byte
}

func NewPaymentVerifier(secret string) *PaymentVerifier {
	return &PaymentVerifier{secret: []byte(secret)}
}

// VerifySignature checks that clientSignature is the hex HMAC-SHA256 of
// "orderID|paymentID" under the gateway secret. Comparison is constant
// time, and the expected digest never leaves this function.
func (v *PaymentVerifier) VerifySignature(orderID, paymentID, clientSignature string) error {
	if orderID == "" || paymentID == "" || clientSignature == "" {
		return ErrMissingPaymentFields
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := mac.Sum(nil)

	sigBytes, err := hex.DecodeString(clientSignature)
	if err != nil {
		return ErrInvalidSignature
	}
	if !hmac.Equal(expected, sigBytes) {
		return ErrInvalidSignature
	}
	return nil
}

// ComputeTotal sums price*qty over the cart with exact decimal arithmetic.
// The client-submitted total is never trusted. Malformed items reject the
// whole cart rather than being skipped: silently dropping a line item
// would under-charge.
func ComputeTotal(items []models.CartItem) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, ErrEmptyCart
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Qty <= 0 || item.Price < 0 {
			return decimal.Zero, ErrMalformedItem
		}
		price := decimal.NewFromFloat(item.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(item.Qty)))
	}
	return total, nil
}

// AmountPaise converts a rupee total to Razorpay's minor currency unit.
func AmountPaise(total decimal.Decimal) int64 {
	return total.Shift(2).Round(0).IntPart()
}

// ValidateOrderMeta checks the delivery contact fields, returning the first
// violated rule so handlers can surface a precise message.
func ValidateOrderMeta(name, mobile string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(mobile) == "" {
		return ErrMissingMobile
	}
	return ValidateMobile(mobile)
}

// ValidateMobile enforces the 10-ASCII-digit rule. Shared by payment
// verification and profile update so the rule lives in one place.
func ValidateMobile(mobile string) error {
	if !mobilePattern.MatchString(strings.TrimSpace(mobile)) {
		return ErrInvalidMobile
	}
	return nil
}
