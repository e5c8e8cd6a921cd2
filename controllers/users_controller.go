package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princinho/resalebackend/dto"
	"github.com/princinho/resalebackend/logging"
	"github.com/princinho/resalebackend/models"
	"github.com/princinho/resalebackend/utils"
)

// POST /users
// Signing up twice with the same email is a successful no-op.
func (a *App) CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateUserDTO
		if !bindJSON(c, &body) {
			return
		}

		user := &models.User{
			Email:     strings.TrimSpace(body.Email),
			Role:      models.RoleBuyer,
			Name:      strings.TrimSpace(body.Name),
			PhotoURL:  strings.TrimSpace(body.PhotoURL),
			CreatedAt: time.Now().UTC(),
		}
		created, err := a.Store.Users.InsertIfAbsent(c.Request.Context(), user)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		if !created {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Old user!"})
			return
		}

		logging.Audit(c, "user.created", map[string]any{"email": user.Email})
		c.JSON(http.StatusOK, inserted(user.ID))
	}
}
