package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/models"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentController struct {
	verifier *services.PaymentVerifier
	gateway  services.PaymentGateway
	keyID    string
	logger   *zap.Logger
}

func NewPaymentController(verifier *services.PaymentVerifier, gateway services.PaymentGateway, keyID string, logger *zap.Logger) *PaymentController {
	return &PaymentController{
		verifier: verifier,
		gateway:  gateway,
		keyID:    keyID,
		logger:   logger,
	}
}

// CreatePaymentOrder computes the cart total server-side and opens a
// gateway order for it: amount in paise, INR, timestamped receipt.
func (pc *PaymentController) CreatePaymentOrder(c *gin.Context) {
	var req struct {
		CartItems []models.CartItem `json:"cartItems"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.ErrEmptyCart)
		return
	}

	total, err := services.ComputeTotal(req.CartItems)
	if err != nil {
		respondError(c, err)
		return
	}

	receipt := "receipt_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	order, err := pc.gateway.CreateOrder(c.Request.Context(), services.AmountPaise(total), "INR", receipt)
	if err != nil {
		pc.logger.Error("failed to create payment order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create payment order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// VerifyPayment validates the gateway callback signature, the delivery
// contact fields and the cart, then returns the assembled order payload
// the client hands to the order endpoint.
func (pc *PaymentController) VerifyPayment(c *gin.Context) {
	var req struct {
		OrderID         string            `json:"orderId"`
		PaymentID       string            `json:"paymentId"`
		Signature       string            `json:"signature"`
		CartItems       []models.CartItem `json:"cartItems"`
		DeliveryAddress string            `json:"deliveryAddress"`
		OrderName       string            `json:"orderName"`
		OrderMobile     string            `json:"orderMobile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.ErrMissingPaymentFields)
		return
	}

	if err := pc.verifier.VerifySignature(req.OrderID, req.PaymentID, req.Signature); err != nil {
		// Signature failures are always logged; the expected digest is not.
		pc.logger.Warn("payment signature rejected",
			zap.String("order_id", req.OrderID),
			zap.String("payment_id", req.PaymentID))
		respondError(c, err)
		return
	}

	if err := services.ValidateOrderMeta(req.OrderName, req.OrderMobile); err != nil {
		respondError(c, err)
		return
	}

	total, err := services.ComputeTotal(req.CartItems)
	if err != nil {
		respondError(c, err)
		return
	}

	orderData := gin.H{
		"order_date":       time.Now().Format("02/01/2006"),
		"order_name":       req.OrderName,
		"order_mobile":     req.OrderMobile,
		"delivery_address": req.DeliveryAddress,
		"total_amount":     total.InexactFloat64(),
		"payment_id":       req.PaymentID,
		"order_id":         req.OrderID,
		"items":            req.CartItems,
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Payment verified successfully",
		"orderData": orderData,
	})
}

// RazorpayKey exposes the publishable key id for the checkout widget.
func (pc *PaymentController) RazorpayKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"key": pc.keyID})
}
