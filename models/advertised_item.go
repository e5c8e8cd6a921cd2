package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AdvertisedItem is a promoted copy of a phone listing. Its salesStatus is
// tracked separately from the phone's own.
type AdvertisedItem struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	PhoneID     string        `bson:"phoneId" json:"phoneId"`
	Name        string        `bson:"name,omitempty" json:"name,omitempty"`
	Brand       string        `bson:"brand,omitempty" json:"brand,omitempty"`
	ResalePrice float64       `bson:"resalePrice,omitempty" json:"resalePrice,omitempty"`
	SellerEmail string        `bson:"sellerEmail,omitempty" json:"sellerEmail,omitempty"`
	Image       string        `bson:"image,omitempty" json:"image,omitempty"`
	SalesStatus SalesStatus   `bson:"salesStatus" json:"salesStatus"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}
