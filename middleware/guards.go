package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/princinho/resalebackend/logging"
	"github.com/princinho/resalebackend/models"
	"github.com/princinho/resalebackend/utils"
)

// Guards are registered ahead of the handler they protect and run in that
// order. Each either calls c.Next or aborts, so the first failing guard
// decides the response and the handler never runs.

func requireIdentity(c *gin.Context) (string, bool) {
	email, ok := Identity(c)
	if !ok {
		utils.AbortWithError(c, utils.ErrUnauthenticated)
	}
	return email, ok
}

// OwnerMatch requires the authenticated email to equal the query parameter
// named param.
func OwnerMatch(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := requireIdentity(c)
		if !ok {
			return
		}
		if c.Query(param) != email {
			logging.Security(c, "access.denied.owner", map[string]any{"identity": email, param: c.Query(param)})
			utils.AbortWithError(c, utils.ErrForbidden)
			return
		}
		c.Next()
	}
}

type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// RoleMatch loads the caller's user record and requires its role to be role.
func RoleMatch(users UserLookup, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := requireIdentity(c)
		if !ok {
			return
		}
		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil && !errors.Is(err, utils.ErrNotFound) {
			utils.AbortWithError(c, err)
			return
		}
		if user == nil || user.Role != role {
			logging.Security(c, "access.denied.role", map[string]any{"identity": email, "required": role})
			utils.AbortWithError(c, utils.ErrForbidden)
			return
		}
		c.Next()
	}
}

// OwnerLookup resolves the owner email of the resource a request addresses.
type OwnerLookup func(c *gin.Context) (string, error)

// ResourceOwner requires the authenticated email to own the addressed
// resource. Lookup errors (bad id, not found, store failure) are answered as is.
func ResourceOwner(lookup OwnerLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := requireIdentity(c)
		if !ok {
			return
		}
		owner, err := lookup(c)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		if owner != email {
			logging.Security(c, "access.denied.resource", map[string]any{"identity": email, "path": c.FullPath()})
			utils.AbortWithError(c, fmt.Errorf("not the owner of this resource: %w", utils.ErrForbidden))
			return
		}
		c.Next()
	}
}
