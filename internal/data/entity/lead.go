package entity

// Lead is a business signup enquiry captured from the public landing page.
type Lead struct {
	BaseNoDelete
	BusinessName string  `db:"business_name"`
	ContactEmail string  `db:"contact_email"`
	BusinessType string  `db:"business_type"`
	Message      *string `db:"message"`
}
