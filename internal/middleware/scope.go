package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
	"github.com/noah-isme/kmq-gateway/pkg/response"
)

// Token scopes.
const (
	ScopeRecordsRead    = "records:read"
	ScopeDocumentsRead  = "documents:read"
	ScopeDocumentsWrite = "documents:write"
	ScopeAdmin          = "admin"
)

// RequireScope admits requests whose token carries any of the allowed
// scopes. The admin scope is always admitted. Must run after Auth.
func RequireScope(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		granted := strings.Fields(claims.Scope)
		for _, have := range granted {
			if have == ScopeAdmin {
				c.Next()
				return
			}
			for _, want := range allowed {
				if have == want {
					c.Next()
					return
				}
			}
		}

		response.Error(c, appErrors.ErrForbidden)
		c.Abort()
	}
}
