package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/resalebackend/auth"
	"github.com/princinho/resalebackend/database"
	"github.com/princinho/resalebackend/models"
	"github.com/princinho/resalebackend/payments"
	"github.com/princinho/resalebackend/storage"
	"github.com/princinho/resalebackend/utils"
)

// App carries the dependencies every handler closes over. It is assembled
// once in main and never mutated afterwards.
type App struct {
	Store     *database.Store
	Tokens    *auth.Tokens
	Payments  *payments.Bridge
	Images    storage.ImageStore
	Validator *storage.FileValidator
	MaxImages int
}

func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Server is running!"})
	}
}

func Ping() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	}
}

func page(c *gin.Context) utils.Page {
	return utils.ParsePage(c.Query("page"), c.Query("limit"))
}

func inserted(id any) models.InsertResult {
	return models.InsertResult{Acknowledged: true, InsertedID: id}
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
