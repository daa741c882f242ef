package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/rahulkure2004/rahul-portfolio/pkg/errors"
)

// respondError writes the JSON error envelope for err. Expected failures
// (validation, auth, not found) surface their message; anything else is a
// generic 500 with the detail kept server-side.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)

	message := "Internal Server Error"
	if status != http.StatusInternalServerError {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			message = appErr.Message
		}
	} else {
		log.Printf("[HTTP] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
