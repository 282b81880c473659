package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== BOOKING NUMBER ====================

// GenerateBookingNumber creates the human-friendly reference customers quote
// at the activity, distinct from the internal booking id.
// Format: FL-YYYYMMDD-RANDOM
func GenerateBookingNumber() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	datePart := now.Format("20060102")
	randomPart := fmt.Sprintf("%06d", rand.Intn(1000000))

	return fmt.Sprintf("FL-%s-%s", datePart, randomPart)
}
