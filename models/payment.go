package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Payment is written once per confirmed booking payment and never updated.
type Payment struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookingID     string        `bson:"bookingId" json:"bookingId"`
	TransactionID string        `bson:"transactionId" json:"transactionId"`
	UserEmail     string        `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	PhoneID       string        `bson:"phoneId,omitempty" json:"phoneId,omitempty"`
	ResalePrice   float64       `bson:"resalePrice,omitempty" json:"resalePrice,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
}
