package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONList writes a collection with its item count.
func JSONList[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "count": len(items)})
}

// JSONError writes the error envelope and aborts the handler chain.
func JSONError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"success": false, "status": http.StatusText(code), "error": message})
}
