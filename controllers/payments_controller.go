package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/resalebackend/dto"
	"github.com/princinho/resalebackend/logging"
	"github.com/princinho/resalebackend/payments"
	"github.com/princinho/resalebackend/utils"
)

func (a *App) CreatePaymentIntent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreatePaymentIntentDTO
		if !bindJSON(c, &body) {
			return
		}
		secret, err := a.Payments.CreateIntent(c.Request.Context(), body.ResalePrice)
		if err != nil {
			logging.Error(c, "payment.intent", err, map[string]any{"resalePrice": body.ResalePrice})
			utils.AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
	}
}

// POST /payments
// Answers with the booking id under soldPhoneId, which is what clients read.
func (a *App) ConfirmPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ConfirmPaymentDTO
		if !bindJSON(c, &body) {
			return
		}
		err := a.Payments.Confirm(c.Request.Context(), payments.Confirmation{
			BookingID:     body.BookingID,
			TransactionID: body.TransactionID,
			UserEmail:     body.UserEmail,
			PhoneID:       body.PhoneID,
			ResalePrice:   body.ResalePrice,
		})
		if err != nil {
			logging.Error(c, "payment.confirm", err, map[string]any{"bookingId": body.BookingID})
			utils.AbortWithError(c, err)
			return
		}
		logging.Audit(c, "payment.confirmed", map[string]any{
			"bookingId":     body.BookingID,
			"transactionId": body.TransactionID,
		})
		c.JSON(http.StatusOK, gin.H{"soldPhoneId": body.BookingID})
	}
}
