package handlers

import (
	"errors"
	"net/http"

	"restaurant-order-api/services"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status and merges any
// structured fields into the error envelope. Anything else is a 500.
func respondError(c *gin.Context, err error) {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	body := gin.H{"error": svcErr.Message}
	for k, v := range svcErr.Fields {
		body[k] = v
	}
	c.JSON(statusFor(svcErr.Kind), body)
}

func statusFor(kind services.ErrorKind) int {
	switch kind {
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindForbidden:
		return http.StatusForbidden
	case services.KindUpstreamFailure:
		return http.StatusInternalServerError
	default:
		// InvalidRequest and InsufficientFunds
		return http.StatusBadRequest
	}
}
