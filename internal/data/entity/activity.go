package entity

import (
	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityTypeRegular ActivityType = "regular"
	ActivityTypeTour    ActivityType = "tour"
)

// Activity is a bookable offering. Two variants share one shape:
// regular (per-unit price, flexible time) and tour (per-participant price,
// fixed weekdays/start time, capped per day). The tour fields are non-nil
// iff Type == ActivityTypeTour.
type Activity struct {
	BaseNoDelete
	VendorID    uuid.UUID  `db:"vendor_id"`
	CategoryID  *uuid.UUID `db:"category_id"` // nil when orphaned
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Price       float64    `db:"price"`
	ImageURL    *string    `db:"image_url"`

	DurationMinutes int     `db:"duration_minutes"`
	MeetingPoint    *string `db:"meeting_point"`
	Requirements    *string `db:"requirements"`
	MaxParticipants int     `db:"max_participants"`

	Type ActivityType `db:"activity_type"`

	// Tour-only fields.
	ActiveDays            []int    `db:"active_days"` // 1=Monday .. 7=Sunday
	FixedStartTime        *string  `db:"fixed_start_time"` // HH:MM:SS
	PricePerParticipant   *float64 `db:"price_per_participant"`
	MaxParticipantsPerDay *int     `db:"max_participants_per_day"`
}

// IsTour reports whether the activity uses per-participant tour pricing.
func (a *Activity) IsTour() bool {
	return a.Type == ActivityTypeTour
}
