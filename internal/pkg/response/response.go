package response

import "github.com/gin-gonic/gin"

// Error writes the API error envelope: a JSON body with a message field.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// ValidationError adds per-field details to the error envelope, keyed by
// field name with the failed validation tag as value.
func ValidationError(c *gin.Context, statusCode int, message string, fields map[string]string) {
	c.JSON(statusCode, gin.H{
		"message": message,
		"errors":  fields,
	})
}
