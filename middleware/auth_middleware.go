package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/princinho/resalebackend/auth"
	"github.com/princinho/resalebackend/logging"
	"github.com/princinho/resalebackend/utils"
)

// IdentityKey is where Authenticated stores the verified caller email.
const IdentityKey = "email"

type Verifier interface {
	Verify(header string) (*auth.Claims, error)
}

// Authenticated requires a valid bearer token and attaches its email to the
// request context.
func Authenticated(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := v.Verify(c.GetHeader("Authorization"))
		if err != nil {
			logging.Security(c, "auth.token.rejected", map[string]any{"reason": err.Error()})
			utils.AbortWithError(c, err)
			return
		}
		c.Set(IdentityKey, claims.Email)
		c.Next()
	}
}

// Identity returns the email Authenticated attached, if any.
func Identity(c *gin.Context) (string, bool) {
	email := c.GetString(IdentityKey)
	return email, email != ""
}
