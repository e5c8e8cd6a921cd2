package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princinho/resalebackend/dto"
	"github.com/princinho/resalebackend/models"
	"github.com/princinho/resalebackend/utils"
)

func (a *App) CreateAdvertisedItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateAdvertisedItemDTO
		if !bindJSON(c, &body) {
			return
		}

		status := models.SalesStatus(body.SalesStatus)
		if status == "" {
			status = models.StatusAvailable
		}
		item := &models.AdvertisedItem{
			PhoneID:     strings.TrimSpace(body.PhoneID),
			Name:        strings.TrimSpace(body.Name),
			Brand:       strings.TrimSpace(body.Brand),
			ResalePrice: body.ResalePrice,
			SellerEmail: strings.TrimSpace(body.SellerEmail),
			Image:       strings.TrimSpace(body.Image),
			SalesStatus: status,
			CreatedAt:   time.Now().UTC(),
		}
		if err := a.Store.Advertised.Insert(c.Request.Context(), item); err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, inserted(item.ID))
	}
}

func (a *App) GetAdvertisedItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := a.Store.Advertised.ListUnsold(c.Request.Context(), page(c))
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// PATCH /advertised-items?phoneId=
// The phone's own status is not touched; callers update both.
func (a *App) MarkAdvertisedItemSold() gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneID := strings.TrimSpace(c.Query("phoneId"))
		if phoneID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phoneId is required"})
			return
		}
		res, err := a.Store.Advertised.MarkSoldByPhone(c.Request.Context(), phoneID)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
