package dto

type CreatePhoneDTO struct {
	Name          string  `json:"name"`
	Brand         string  `json:"brand" binding:"required"`
	SellerEmail   string  `json:"sellerEmail" binding:"omitempty,email"`
	SellerName    string  `json:"sellerName"`
	SellerPhone   string  `json:"sellerPhone"`
	ResalePrice   float64 `json:"resalePrice" binding:"required,gt=0"`
	OriginalPrice float64 `json:"originalPrice" binding:"gte=0"`
	Condition     string  `json:"condition"`
	YearsOfUse    float64 `json:"yearsOfUse" binding:"gte=0"`
	Location      string  `json:"location"`
	Description   string  `json:"description" binding:"max=8000"`
	SalesStatus   string  `json:"salesStatus" binding:"omitempty,oneof=Available Sold"`
}
