package request

type CreateLeadRequest struct {
	BusinessName string  `json:"business_name" validate:"required,min=2,max=200"`
	ContactEmail string  `json:"contact_email" validate:"required,email"`
	BusinessType string  `json:"business_type" validate:"required,min=2,max=100"`
	Message      *string `json:"message,omitempty" validate:"omitempty,max=2000"`
}
