package utils

import (
	"hotel-backoffice/failure"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": gin.H{"code": code, "message": message}})
}

// JSONFailure renders err with the HTTP status carried by the failure
// taxonomy, falling back to 500 for unclassified errors.
func JSONFailure(c *gin.Context, err error) {
	code := failure.GetCode(err)
	c.JSON(code, gin.H{"success": false, "error": gin.H{"code": code, "message": err.Error()}})
}
