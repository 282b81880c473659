package usecase

import "errors"

// Booking taxonomy. These are surfaced to the customer as actionable
// messages; everything else propagates as a wrapped upstream error and is
// shown as a generic retry prompt.
var (
	// ErrLimitExceeded: the customer already holds the maximum number of
	// bookings with this vendor.
	ErrLimitExceeded = errors.New("booking limit reached for this customer")

	// ErrSlotConflict: an activity in the cart is already booked for the
	// requested date and time.
	ErrSlotConflict = errors.New("time slot already booked")
)
