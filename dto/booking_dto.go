package dto

type CreateBookingDTO struct {
	UserEmail       string  `json:"userEmail" binding:"required,email"`
	UserName        string  `json:"userName"`
	UserPhone       string  `json:"userPhone"`
	PhoneID         string  `json:"phoneId" binding:"required"`
	PhoneName       string  `json:"phoneName"`
	ResalePrice     float64 `json:"resalePrice" binding:"required,gt=0"`
	MeetingLocation string  `json:"meetingLocation"`
}
