package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Booking struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserEmail       string        `bson:"userEmail" json:"userEmail"`
	UserName        string        `bson:"userName,omitempty" json:"userName,omitempty"`
	UserPhone       string        `bson:"userPhone,omitempty" json:"userPhone,omitempty"`
	PhoneID         string        `bson:"phoneId" json:"phoneId"`
	PhoneName       string        `bson:"phoneName,omitempty" json:"phoneName,omitempty"`
	ResalePrice     float64       `bson:"resalePrice" json:"resalePrice"`
	MeetingLocation string        `bson:"meetingLocation,omitempty" json:"meetingLocation,omitempty"`
	Paid            bool          `bson:"paid" json:"paid"`
	TransactionID   *string       `bson:"transactionId" json:"transactionId"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
}
