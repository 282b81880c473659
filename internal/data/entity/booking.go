package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingDetail is one line item embedded in a booking. PriceAtPurchase is a
// purchase-time snapshot: later catalog price edits must never alter it.
type BookingDetail struct {
	ActivityID      uuid.UUID `json:"activity_id"`
	Quantity        int       `json:"quantity"`
	Name            string    `json:"name"`
	PriceAtPurchase float64   `json:"price_at_purchase"`
}

// Booking is immutable once created except for the IsFulfilled flag.
type Booking struct {
	ID               uuid.UUID       `db:"id"`
	VendorID         uuid.UUID       `db:"vendor_id"`
	BookingNumber    string          `db:"booking_number"`
	Details          []BookingDetail `db:"booking_details"` // jsonb
	TotalPrice       float64         `db:"total_price"`
	BookingDate      time.Time       `db:"booking_date"`
	BookingTime      string          `db:"booking_time"` // HH:MM
	CustomerName     string          `db:"customer_name"`
	CustomerEmail    string          `db:"customer_email"`
	CustomerWhatsApp *string         `db:"customer_whatsapp"`
	Comments         *string         `db:"comments"`
	ParticipantCount int             `db:"participant_count"`
	IsPaid           bool            `db:"is_paid"`
	IsFulfilled      bool            `db:"is_fulfilled"`
	CreatedAt        time.Time       `db:"created_at"`
}

// ContainsActivity reports whether any line item references the given activity.
func (b *Booking) ContainsActivity(activityID uuid.UUID) bool {
	for _, d := range b.Details {
		if d.ActivityID == activityID {
			return true
		}
	}
	return false
}
