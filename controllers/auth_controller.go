package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/princinho/resalebackend/logging"
	"github.com/princinho/resalebackend/utils"
)

// GET /jwt?email=
// Unknown emails get 403 with an empty token rather than an error.
func (a *App) IssueToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.Query("email"))
		if email == "" {
			c.JSON(http.StatusForbidden, gin.H{"token": ""})
			return
		}

		user, err := a.Store.Users.FindByEmail(c.Request.Context(), email)
		if errors.Is(err, utils.ErrNotFound) {
			logging.Security(c, "auth.token.unknown_user", map[string]any{"email": email})
			c.JSON(http.StatusForbidden, gin.H{"token": ""})
			return
		}
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}

		token, err := a.Tokens.Issue(user.Email)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
