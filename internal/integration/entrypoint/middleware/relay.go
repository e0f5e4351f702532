package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/integration/entrypoint/dto"
)

// RelayTokenHeader carries the shared secret of the form relay.
const RelayTokenHeader = "X-Relay-Token"

// RelayToken authenticates form relay requests by a shared secret.
// An empty configured token rejects every request.
func RelayToken(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(RelayTokenHeader)
		if expected == "" || got == "" ||
			subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid relay token",
				Code:  string(domainerror.ErrCodeInvalidRelayToken),
			})
			return
		}
		c.Next()
	}
}
