package controller

import (
	"github.com/gin-gonic/gin"
)

// jsonError sends the API's uniform error envelope.
func jsonError(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{"error": msg})
}
