package controllers

import (
	"log"

	"github.com/gin-gonic/gin"

	"shopadmin/apperrors"
	"shopadmin/middleware"
)

// fail logs the failure with request context and answers with the taxonomy
// status and a client-safe message.
func fail(c *gin.Context, err error) {
	log.Printf("[%s] %s %s: %v",
		c.GetString(middleware.RequestIDKey), c.Request.Method, c.Request.URL.Path, err)
	c.JSON(apperrors.StatusCode(err), gin.H{
		"success": false,
		"message": apperrors.Message(err),
	})
}
