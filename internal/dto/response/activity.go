package response

import (
	"time"

	"fastlane-booking/internal/data/entity"
)

type ActivityResponse struct {
	ID          string  `json:"id"`
	VendorID    string  `json:"vendor_id"`
	CategoryID  *string `json:"category_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url"`

	DurationMinutes int     `json:"duration_minutes"`
	MeetingPoint    *string `json:"meeting_point"`
	Requirements    *string `json:"requirements"`
	MaxParticipants int     `json:"max_participants"`

	ActivityType string `json:"activity_type"`

	ActiveDays            []int    `json:"active_days,omitempty"`
	FixedStartTime        *string  `json:"fixed_start_time,omitempty"`
	PricePerParticipant   *float64 `json:"price_per_participant,omitempty"`
	MaxParticipantsPerDay *int     `json:"max_participants_per_day,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	VendorID  string    `json:"vendor_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ActivityToResponse(a *entity.Activity) ActivityResponse {
	var categoryID *string
	if a.CategoryID != nil {
		s := a.CategoryID.String()
		categoryID = &s
	}

	return ActivityResponse{
		ID:                    a.ID.String(),
		VendorID:              a.VendorID.String(),
		CategoryID:            categoryID,
		Title:                 a.Title,
		Description:           a.Description,
		Price:                 a.Price,
		ImageURL:              a.ImageURL,
		DurationMinutes:       a.DurationMinutes,
		MeetingPoint:          a.MeetingPoint,
		Requirements:          a.Requirements,
		MaxParticipants:       a.MaxParticipants,
		ActivityType:          string(a.Type),
		ActiveDays:            a.ActiveDays,
		FixedStartTime:        a.FixedStartTime,
		PricePerParticipant:   a.PricePerParticipant,
		MaxParticipantsPerDay: a.MaxParticipantsPerDay,
		CreatedAt:             a.CreatedAt,
	}
}

func CategoryToResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID.String(),
		VendorID:  c.VendorID.String(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}
