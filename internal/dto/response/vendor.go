package response

import (
	"time"

	"fastlane-booking/internal/data/entity"
)

type VendorResponse struct {
	ID                string    `json:"id"`
	Name              *string   `json:"name"`
	Description       *string   `json:"description"`
	Location          *string   `json:"location"`
	Currency          string    `json:"currency"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	CoverImageURL     *string   `json:"cover_image_url"`
	HowToBook         *string   `json:"how_to_book"`
	Slug              *string   `json:"slug"`
	CreatedAt         time.Time `json:"created_at"`
}

type CategoryWithActivities struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Activities []ActivityResponse `json:"activities"`
}

// VendorPageResponse is the public storefront payload: the vendor profile with
// its catalog nested per category. Categories without activities are omitted.
type VendorPageResponse struct {
	VendorResponse
	Categories []CategoryWithActivities `json:"categories"`
}

type SlugAvailabilityResponse struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

func VendorToResponse(v *entity.Vendor) VendorResponse {
	return VendorResponse{
		ID:                v.ID.String(),
		Name:              v.Name,
		Description:       v.Description,
		Location:          v.Location,
		Currency:          v.Currency,
		ProfilePictureURL: v.ProfilePictureURL,
		CoverImageURL:     v.CoverImageURL,
		HowToBook:         v.HowToBook,
		Slug:              v.Slug,
		CreatedAt:         v.CreatedAt,
	}
}
