package dto

type CreatePaymentIntentDTO struct {
	ResalePrice float64 `json:"resalePrice" binding:"required,gt=0"`
}

type ConfirmPaymentDTO struct {
	BookingID     string  `json:"bookingId" binding:"required"`
	TransactionID string  `json:"transactionId" binding:"required"`
	UserEmail     string  `json:"userEmail"`
	PhoneID       string  `json:"phoneId"`
	ResalePrice   float64 `json:"resalePrice"`
}
