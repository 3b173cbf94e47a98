package controllers

import (
	apperrors "github.com/Utkarsh-Jain2199/Meal-Express-Backend/common/errors"
	"github.com/gin-gonic/gin"
)

// respondError translates an application error into the uniform failure
// shape. Internal detail stays in logs; the client only sees the safe
// message.
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.StatusCode(err), gin.H{
		"success": false,
		"error":   apperrors.ClientMessage(err),
	})
}
