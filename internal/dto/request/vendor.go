package request

type UpdateVendorProfileRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location          *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Currency          *string `json:"currency,omitempty" validate:"omitempty,len=3"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
	CoverImageURL     *string `json:"cover_image_url,omitempty" validate:"omitempty,url"`
	HowToBook         *string `json:"how_to_book,omitempty" validate:"omitempty,max=2000"`
}

type UpdateSlugRequest struct {
	Slug string `json:"slug" validate:"required,min=3,max=100"`
}
