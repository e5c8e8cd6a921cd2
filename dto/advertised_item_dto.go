package dto

type CreateAdvertisedItemDTO struct {
	PhoneID     string  `json:"phoneId" binding:"required"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	ResalePrice float64 `json:"resalePrice" binding:"gte=0"`
	SellerEmail string  `json:"sellerEmail"`
	Image       string  `json:"image"`
	SalesStatus string  `json:"salesStatus" binding:"omitempty,oneof=Available Sold"`
}
