package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	notadomain "github.com/dimaswi/pos-emas/internal/nota/domain"
	txdomain "github.com/dimaswi/pos-emas/internal/transaction/domain"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

// ErrorHandlingMiddleware maps domain sentinels onto HTTP statuses after the
// handler chain runs.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

// AbortWithError records err for the error middleware and stops the chain.
func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case errors.Is(err, txdomain.ErrTransactionNotFound),
		errors.Is(err, txdomain.ErrItemNotFound),
		errors.Is(err, txdomain.ErrCategoryNotFound):
		return http.StatusNotFound, errorPayload{Type: "not_found", Message: err.Error()}

	case errors.Is(err, txdomain.ErrEmptyTransaction),
		errors.Is(err, txdomain.ErrInvalidGrossWeight),
		errors.Is(err, notadomain.ErrNoItems),
		errors.Is(err, notadomain.ErrUnknownMode):
		return http.StatusBadRequest, errorPayload{Type: "invalid_request", Message: err.Error()}

	case errors.Is(err, txdomain.ErrDuplicateCode):
		return http.StatusConflict, errorPayload{Type: "conflict", Message: err.Error()}

	case errors.Is(err, notadomain.ErrSinkBlocked):
		// The operator must see this and re-trigger printing manually.
		return http.StatusConflict, errorPayload{
			Type:    "print_blocked",
			Message: err.Error(),
			Warning: "Jendela cetak tidak dapat dibuka. Periksa pengaturan printer lalu coba lagi.",
		}

	default:
		return http.StatusInternalServerError, errorPayload{Type: "internal_error", Message: "internal error"}
	}
}
