package request

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`

	// Vendor profile seed, created together with the account.
	BusinessName string `json:"business_name" validate:"required,min=2,max=100"`
	Currency     string `json:"currency" validate:"omitempty,len=3"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
