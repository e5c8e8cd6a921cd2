package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/princinho/resalebackend/models"
	"github.com/princinho/resalebackend/utils"
)

func (a *App) GetBrands() gin.HandlerFunc {
	return func(c *gin.Context) {
		brands, err := a.Store.Brands.List(c.Request.Context(), page(c))
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, brands)
	}
}

// GET /brands/:id answers null for an unknown brand.
func (a *App) GetBrand() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseObjectID(c.Param("id"))
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		brand, err := a.Store.Brands.FindByID(c.Request.Context(), id)
		respondBrand(c, brand, err)
	}
}

func (a *App) GetBrandBySlug() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := utils.GenerateSlug(strings.TrimSpace(c.Param("slug")))
		brand, err := a.Store.Brands.FindBySlug(c.Request.Context(), slug)
		respondBrand(c, brand, err)
	}
}

func respondBrand(c *gin.Context, brand *models.Brand, err error) {
	if errors.Is(err, utils.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}
