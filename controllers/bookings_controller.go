package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princinho/resalebackend/dto"
	"github.com/princinho/resalebackend/models"
	"github.com/princinho/resalebackend/utils"
)

func (a *App) CreateBooking() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateBookingDTO
		if !bindJSON(c, &body) {
			return
		}

		booking := &models.Booking{
			UserEmail:       strings.TrimSpace(body.UserEmail),
			UserName:        strings.TrimSpace(body.UserName),
			UserPhone:       strings.TrimSpace(body.UserPhone),
			PhoneID:         strings.TrimSpace(body.PhoneID),
			PhoneName:       strings.TrimSpace(body.PhoneName),
			ResalePrice:     body.ResalePrice,
			MeetingLocation: strings.TrimSpace(body.MeetingLocation),
			Paid:            false,
			CreatedAt:       time.Now().UTC(),
		}
		if err := a.Store.Bookings.Insert(c.Request.Context(), booking); err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, inserted(booking.ID))
	}
}

// GET /bookings?email=
// Guarded so callers only ever see their own bookings.
func (a *App) GetBookings() gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := a.Store.Bookings.ListByUser(c.Request.Context(), c.Query("email"), page(c))
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

func (a *App) GetBooking() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseObjectID(c.Param("id"))
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		booking, err := a.Store.Bookings.FindByID(c.Request.Context(), id)
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}
