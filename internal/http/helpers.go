// README: HTTP helper utilities for JSON and error mapping.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/quote"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeQuoteError maps engine errors onto status codes. Validation errors
// carry their message to the client; anything else stays opaque.
func writeQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, quote.ErrInvalidCoordinate),
		errors.Is(err, quote.ErrInvalidOrderClass),
		errors.Is(err, quote.ErrInvalidDeliveryTime):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
