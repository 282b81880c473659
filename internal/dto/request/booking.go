package request

type BookingItemRequest struct {
	ActivityID string `json:"activity_id" validate:"required,uuid4"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

type CreateBookingRequest struct {
	VendorID         string               `json:"vendor_id" validate:"required,uuid4"`
	Items            []BookingItemRequest `json:"items" validate:"required,min=1,dive"`
	BookingDate      string               `json:"booking_date" validate:"required,datetime=2006-01-02"`
	BookingTime      string               `json:"booking_time" validate:"required,datetime=15:04"`
	CustomerName     string               `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail    string               `json:"customer_email" validate:"required,email"`
	CustomerWhatsApp *string              `json:"customer_whatsapp,omitempty" validate:"omitempty,max=30"`
	Comments         *string              `json:"comments,omitempty" validate:"omitempty,max=1000"`

	// Applied cart-wide to every tour line item, defaults to 1.
	ParticipantCount int `json:"participant_count" validate:"omitempty,min=1"`
}
