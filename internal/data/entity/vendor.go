package entity

import (
	"github.com/google/uuid"
)

// Vendor is a business tenant listing activities and receiving bookings.
type Vendor struct {
	BaseNoDelete
	UserID            uuid.UUID `db:"user_id"`
	Name              *string   `db:"name"`
	Description       *string   `db:"description"`
	Location          *string   `db:"location"`
	Currency          string    `db:"currency"` // ISO 4217, see utils.SupportedCurrencies
	ProfilePictureURL *string   `db:"profile_picture_url"`
	CoverImageURL     *string   `db:"cover_image_url"`
	HowToBook         *string   `db:"how_to_book"`
	Slug              *string   `db:"slug"` // unique across vendors, nullable until chosen
}
