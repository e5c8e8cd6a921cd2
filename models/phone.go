package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type SalesStatus string

const (
	StatusAvailable SalesStatus = "Available"
	StatusSold      SalesStatus = "Sold"
)

type PhoneImage struct {
	URL        string `bson:"url" json:"url"`
	ObjectName string `bson:"objectName" json:"-"`
	MimeType   string `bson:"mimeType" json:"mimeType"`
	SizeBytes  int64  `bson:"sizeBytes" json:"sizeBytes"`
}

type Phone struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string        `bson:"name,omitempty" json:"name,omitempty"`
	Brand         string        `bson:"brand" json:"brand"`
	SellerEmail   string        `bson:"sellerEmail" json:"sellerEmail"`
	SellerName    string        `bson:"sellerName,omitempty" json:"sellerName,omitempty"`
	SellerPhone   string        `bson:"sellerPhone,omitempty" json:"sellerPhone,omitempty"`
	ResalePrice   float64       `bson:"resalePrice" json:"resalePrice"`
	OriginalPrice float64       `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Condition     string        `bson:"condition,omitempty" json:"condition,omitempty"`
	YearsOfUse    float64       `bson:"yearsOfUse,omitempty" json:"yearsOfUse,omitempty"`
	Location      string        `bson:"location,omitempty" json:"location,omitempty"`
	Description   string        `bson:"description,omitempty" json:"description,omitempty"`
	Images        []PhoneImage  `bson:"images,omitempty" json:"images,omitempty"`
	SalesStatus   SalesStatus   `bson:"salesStatus" json:"salesStatus"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
}
