package repository

import (
	"fastlane-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Vendor   VendorRepository
	Category CategoryRepository
	Activity ActivityRepository
	Booking  BookingRepository
	Lead     LeadRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Vendor:   NewVendorRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Activity: NewActivityRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Lead:     NewLeadRepository(db, log),
	}
}
