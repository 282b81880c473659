package wire

import (
	"fastlane-booking/internal/adaptor"
	"fastlane-booking/internal/data/repository"
	"fastlane-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Customer checkout, no account needed
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/admin/bookings - Paginated list of own bookings
		r.Get("/", bookingHandler.ListBookings)

		// GET /api/admin/bookings/{id} - Single booking details
		r.Get("/{id}", bookingHandler.GetBooking)

		// PUT /api/admin/bookings/{id}/fulfill - Mark served
		r.Put("/{id}/fulfill", bookingHandler.Fulfill)

		// PUT /api/admin/bookings/{id}/unfulfill - Undo a mistaken fulfill
		r.Put("/{id}/unfulfill", bookingHandler.Unfulfill)
	})
}
