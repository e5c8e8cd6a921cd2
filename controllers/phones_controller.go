package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princinho/resalebackend/dto"
	"github.com/princinho/resalebackend/logging"
	"github.com/princinho/resalebackend/middleware"
	"github.com/princinho/resalebackend/models"
	"github.com/princinho/resalebackend/storage"
	"github.com/princinho/resalebackend/utils"
)

const phoneKey = "phone"

// GET /phones?brand=
// Sold phones are never listed.
func (a *App) GetPhonesByBrand() gin.HandlerFunc {
	return func(c *gin.Context) {
		phones, err := a.Store.Phones.ListAvailableByBrand(c.Request.Context(), c.Query("brand"), page(c))
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, phones)
	}
}

// POST /phones
// The listing belongs to the caller: sellerEmail defaults to the token email
// and may not name anyone else.
func (a *App) CreatePhone() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreatePhoneDTO
		if !bindJSON(c, &body) {
			return
		}

		identity, _ := middleware.Identity(c)
		seller := strings.TrimSpace(body.SellerEmail)
		if seller == "" {
			seller = identity
		}
		if seller != identity {
			utils.AbortWithError(c, fmt.Errorf("cannot list a phone for another seller: %w", utils.ErrForbidden))
			return
		}

		status := models.SalesStatus(body.SalesStatus)
		if status == "" {
			status = models.StatusAvailable
		}

		phone := &models.Phone{
			Name:          strings.TrimSpace(body.Name),
			Brand:         strings.TrimSpace(body.Brand),
			SellerEmail:   seller,
			SellerName:    strings.TrimSpace(body.SellerName),
			SellerPhone:   strings.TrimSpace(body.SellerPhone),
			ResalePrice:   body.ResalePrice,
			OriginalPrice: body.OriginalPrice,
			Condition:     strings.TrimSpace(body.Condition),
			YearsOfUse:    body.YearsOfUse,
			Location:      strings.TrimSpace(body.Location),
			Description:   strings.TrimSpace(body.Description),
			SalesStatus:   status,
			CreatedAt:     time.Now().UTC(),
		}
		if err := a.Store.Phones.Insert(c.Request.Context(), phone); err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, inserted(phone.ID))
	}
}

// PATCH /phones?phoneId=
func (a *App) MarkPhoneSold() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseObjectID(c.Query("phoneId"))
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		res, err := a.Store.Phones.MarkSold(c.Request.Context(), id)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		logging.Audit(c, "phone.sold", map[string]any{"phoneId": id.Hex()})
		c.JSON(http.StatusOK, res)
	}
}

// GET /my-products?email=
func (a *App) GetMyProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		phones, err := a.Store.Phones.ListBySeller(c.Request.Context(), c.Query("email"), page(c))
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, phones)
	}
}

// PhoneOwner resolves the seller of the phone named by the :id path
// parameter and keeps the loaded phone on the context for the handler.
func (a *App) PhoneOwner() middleware.OwnerLookup {
	return func(c *gin.Context) (string, error) {
		id, err := utils.ParseObjectID(c.Param("id"))
		if err != nil {
			return "", err
		}
		phone, err := a.Store.Phones.FindByID(c.Request.Context(), id)
		if err != nil {
			return "", err
		}
		c.Set(phoneKey, phone)
		return phone.SellerEmail, nil
	}
}

func guardedPhone(c *gin.Context) (*models.Phone, bool) {
	v, ok := c.Get(phoneKey)
	if !ok {
		return nil, false
	}
	phone, ok := v.(*models.Phone)
	return phone, ok
}

// DELETE /my-products/:id
// Removes the phone, then every advertised item pointing at it, then its
// photos. Photo cleanup failures are logged and otherwise ignored.
func (a *App) DeletePhone() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		phone, ok := guardedPhone(c)
		if !ok {
			utils.AbortWithError(c, fmt.Errorf("phone: %w", utils.ErrNotFound))
			return
		}

		deleted, err := a.Store.Phones.Delete(ctx, phone.ID)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		adsDeleted, err := a.Store.Advertised.DeleteByPhone(ctx, phone.ID.Hex())
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}

		if a.Images != nil && len(phone.Images) > 0 {
			names := make([]string, 0, len(phone.Images))
			for _, img := range phone.Images {
				names = append(names, img.ObjectName)
			}
			if err := a.Images.Delete(ctx, names); err != nil {
				logging.Error(c, "phone.images.cleanup", err, map[string]any{"phoneId": phone.ID.Hex()})
			}
		}

		logging.Audit(c, "phone.deleted", map[string]any{"phoneId": phone.ID.Hex(), "advertisedDeleted": adsDeleted})
		c.JSON(http.StatusOK, models.DeleteResult{
			Acknowledged:      true,
			DeletedCount:      deleted,
			AdvertisedDeleted: adsDeleted,
		})
	}
}

// POST /phones/:id/images (multipart, field "images")
func (a *App) UploadPhoneImages() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if a.Images == nil {
			utils.AbortWithError(c, utils.ErrStorageDisabled)
			return
		}
		phone, ok := guardedPhone(c)
		if !ok {
			utils.AbortWithError(c, fmt.Errorf("phone: %w", utils.ErrNotFound))
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no images provided"})
			return
		}
		if len(phone.Images)+len(files) > a.MaxImages {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Max %v images", a.MaxImages)})
			return
		}

		images, err := storage.UploadPhoneImages(ctx, a.Images, a.Validator, phone.ID.Hex(), files)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}

		if err := a.Store.Phones.AddImages(ctx, phone.ID, images); err != nil {
			names := make([]string, 0, len(images))
			for _, img := range images {
				names = append(names, img.ObjectName)
			}
			_ = a.Images.Delete(ctx, names)
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"images": images})
	}
}
