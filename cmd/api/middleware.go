package api

import (
	"log"
	"net/http"

	"watchlog-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler normalizes errors attached with c.Error into the response
// shape every endpoint shares. Unexpected errors become a generic 500;
// in production their detail stays out of the response.
func ErrorHandler(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.Status(err)
		message := err.Error()

		if status == http.StatusInternalServerError {
			log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			if production {
				message = "Internal Server Error"
			}
		}

		c.JSON(status, gin.H{"error": message})
	}
}
