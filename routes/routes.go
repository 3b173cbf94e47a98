package routes

import (
	"net/http"

	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/controllers"
	"github.com/gin-gonic/gin"
)

// Register mounts the full HTTP surface. Payment endpoints and profile
// endpoints require a valid session token.
func Register(
	r *gin.Engine,
	authMW gin.HandlerFunc,
	auth *controllers.AuthController,
	food *controllers.FoodController,
	orders *controllers.OrderController,
	payments *controllers.PaymentController,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/createuser", auth.Signup)
	authGroup.POST("/login", auth.Login)
	authGroup.POST("/google-auth", auth.GoogleAuth)
	authGroup.POST("/getuser", authMW, auth.GetUser)
	authGroup.PUT("/updateuser", authMW, auth.UpdateUser)
	authGroup.POST("/getlocation", auth.GetLocation)

	api.POST("/food-data", food.GetFoodData)

	api.POST("/order", orders.CreateOrder)
	api.POST("/my-orders", orders.GetMyOrders)

	api.POST("/payment-order", authMW, payments.CreatePaymentOrder)
	api.POST("/verify-payment", authMW, payments.VerifyPayment)
	api.GET("/razorpay-key", payments.RazorpayKey)
}
