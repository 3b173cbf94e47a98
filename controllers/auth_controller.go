package controllers

import (
	"context"
	"net/http"

	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/middleware"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/models"
	"github.com/gin-gonic/gin"
)

// IAuthService is the account surface the controller needs.
type IAuthService interface {
	Signup(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GoogleLogin(ctx context.Context, credential string) (string, *models.User, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, name, location, mobile string) (*models.User, error)
}

// IGeocodeService resolves coordinates for the address picker.
type IGeocodeService interface {
	ReverseGeocode(ctx context.Context, lat, long string) (string, error)
}

type AuthController struct {
	auth    IAuthService
	geocode IGeocodeService
}

func NewAuthController(auth IAuthService, geocode IGeocodeService) *AuthController {
	return &AuthController{auth: auth, geocode: geocode}
}

// Signup registers a local account and returns a session token.
func (ac *AuthController) Signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required,min=3"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=5"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Enter a valid name (3+ chars), email and password (5+ chars)",
		})
		return
	}

	token, err := ac.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "authToken": token})
}

// Login authenticates a local account.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Enter a valid email and password",
		})
		return
	}

	token, err := ac.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "authToken": token})
}

// GoogleAuth signs a user in with a Google ID token, creating the account
// on first sign-in.
func (ac *AuthController) GoogleAuth(c *gin.Context) {
	var req struct {
		Credential string `json:"credential"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Google credential is required"})
		return
	}

	token, user, err := ac.auth.GoogleLogin(c.Request.Context(), req.Credential)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"authToken": token,
		"userName":  user.Name,
		"userEmail": user.Email,
	})
}

// GetUser returns the authenticated user's profile, password excluded.
func (ac *AuthController) GetUser(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := ac.auth.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser updates the profile fields the client may change.
func (ac *AuthController) UpdateUser(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Name     string `json:"name"`
		Location string `json:"location"`
		Mobile   string `json:"mobile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	user, err := ac.auth.UpdateProfile(c.Request.Context(), userID, req.Name, req.Location, req.Mobile)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// GetLocation reverse-geocodes coordinates for the address picker.
func (ac *AuthController) GetLocation(c *gin.Context) {
	var req struct {
		LatLong struct {
			Lat  string `json:"lat"`
			Long string `json:"long"`
		} `json:"latlong"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	location, err := ac.geocode.ReverseGeocode(c.Request.Context(), req.LatLong.Lat, req.LatLong.Long)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": location})
}
