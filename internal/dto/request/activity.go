package request

type ActivityRequest struct {
	CategoryID  *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       float64 `json:"price" validate:"min=0"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`

	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,min=0"`
	MeetingPoint    *string `json:"meeting_point,omitempty" validate:"omitempty,max=500"`
	Requirements    *string `json:"requirements,omitempty" validate:"omitempty,max=2000"`
	MaxParticipants int     `json:"max_participants" validate:"omitempty,min=0"`

	ActivityType string `json:"activity_type" validate:"required,oneof=regular tour"`

	// Tour-only fields. Must be set iff activity_type is "tour"; the service
	// enforces the invariant because it spans multiple fields.
	ActiveDays            []int    `json:"active_days,omitempty" validate:"omitempty,min=1,max=7,dive,min=1,max=7"`
	FixedStartTime        *string  `json:"fixed_start_time,omitempty" validate:"omitempty,datetime=15:04:05"`
	PricePerParticipant   *float64 `json:"price_per_participant,omitempty" validate:"omitempty,min=0"`
	MaxParticipantsPerDay *int     `json:"max_participants_per_day,omitempty" validate:"omitempty,min=1"`
}
