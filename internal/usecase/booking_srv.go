package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fastlane-booking/internal/data/entity"
	"fastlane-booking/internal/data/repository"
	"fastlane-booking/internal/dto/request"
	"fastlane-booking/internal/dto/response"
	"fastlane-booking/pkg/mailer"
	"fastlane-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking runs the full checkout pipeline for a customer cart.
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// ListBookings returns the caller's bookings newest first; fulfilled nil
	// lists everything, otherwise it filters on the flag.
	ListBookings(ctx context.Context, userID uuid.UUID, fulfilled *bool, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*response.BookingResponse, error)
	SetFulfilled(ctx context.Context, userID, bookingID uuid.UUID, fulfilled bool) (*response.BookingResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("CreateBooking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("validation failed: invalid vendor id")
	}

	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: invalid booking date")
	}

	// 2. Vendor must exist
	vendor, err := s.repo.Vendor.FindByID(ctx, vendorID)
	if err != nil {
		s.log.Error("Failed to find vendor", zap.Error(err), zap.String("vendor_id", req.VendorID))
		return nil, fmt.Errorf("failed to look up vendor")
	}
	if vendor == nil {
		return nil, fmt.Errorf("vendor %s not found", req.VendorID)
	}

	// 3. Per-customer booking cap, when the policy is enabled
	if s.config.Booking.CustomerCapEnabled {
		count, err := s.repo.Booking.CountByVendorAndEmail(ctx, vendorID, req.CustomerEmail)
		if err != nil {
			s.log.Error("Failed to count customer bookings", zap.Error(err))
			return nil, fmt.Errorf("failed to check booking limit")
		}
		if count >= int64(s.config.Booking.CustomerCapMax) {
			s.log.Info("Booking cap reached",
				zap.String("vendor_id", req.VendorID),
				zap.Int64("existing", count),
				zap.Int("max", s.config.Booking.CustomerCapMax))
			return nil, fmt.Errorf("%w: maximum of %d bookings per customer", ErrLimitExceeded, s.config.Booking.CustomerCapMax)
		}
	}

	// 4. Load the cart's activities and build the purchase-time snapshot.
	// The snapshot keeps each line item priced as it was at checkout even if
	// the vendor later edits the catalog.
	participantCount := req.ParticipantCount
	if participantCount < 1 {
		participantCount = 1
	}

	details := make([]entity.BookingDetail, 0, len(req.Items))
	activityIDs := make([]uuid.UUID, 0, len(req.Items))
	var totalPrice float64

	for _, item := range req.Items {
		activityID, err := uuid.Parse(item.ActivityID)
		if err != nil {
			return nil, fmt.Errorf("validation failed: invalid activity id %s", item.ActivityID)
		}

		activity, err := s.repo.Activity.FindByID(ctx, activityID)
		if err != nil {
			s.log.Error("Failed to find activity", zap.Error(err), zap.String("activity_id", item.ActivityID))
			return nil, fmt.Errorf("failed to look up activity")
		}
		if activity == nil || activity.VendorID != vendorID {
			return nil, fmt.Errorf("activity %s not found", item.ActivityID)
		}

		unitPrice := activity.Price
		lineTotal := activity.Price * float64(item.Quantity)
		if activity.IsTour() && activity.PricePerParticipant != nil {
			// Tour lines are priced per participant, cart-wide. Quantity is
			// kept in the snapshot for the slot claim but does not multiply.
			unitPrice = *activity.PricePerParticipant
			lineTotal = *activity.PricePerParticipant * float64(participantCount)
		}

		details = append(details, entity.BookingDetail{
			ActivityID:      activity.ID,
			Quantity:        item.Quantity,
			Name:            activity.Title,
			PriceAtPurchase: unitPrice,
		})
		activityIDs = append(activityIDs, activity.ID)
		totalPrice += lineTotal
	}

	// 5. Advisory conflict pre-check. The unique slot claim in the repository
	// is the authoritative gate; this read just catches the common case before
	// opening a transaction.
	existing, err := s.repo.Booking.FindByVendorSlot(ctx, vendorID, bookingDate, req.BookingTime)
	if err != nil {
		s.log.Error("Failed to pre-check slot", zap.Error(err))
		return nil, fmt.Errorf("failed to check availability")
	}
	for _, b := range existing {
		for i, id := range activityIDs {
			if b.ContainsActivity(id) {
				return nil, fmt.Errorf("%w: %s at %s on %s", ErrSlotConflict,
					details[i].Name, req.BookingTime, req.BookingDate)
			}
		}
	}

	// 6. Persist booking and slot claims atomically
	booking := &entity.Booking{
		ID:               uuid.New(),
		VendorID:         vendorID,
		BookingNumber:    utils.GenerateBookingNumber(),
		Details:          details,
		TotalPrice:       totalPrice,
		BookingDate:      bookingDate,
		BookingTime:      req.BookingTime,
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerWhatsApp: req.CustomerWhatsApp,
		Comments:         req.Comments,
		ParticipantCount: participantCount,
		IsPaid:           false,
		IsFulfilled:      false,
		CreatedAt:        time.Now(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlot) {
			return nil, fmt.Errorf("%w: %s on %s", ErrSlotConflict, req.BookingTime, req.BookingDate)
		}
		s.log.Error("Failed to create booking",
			zap.Error(err), zap.String("booking_number", booking.BookingNumber))
		return nil, fmt.Errorf("failed to create booking")
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_number", booking.BookingNumber),
		zap.String("vendor_id", vendorID.String()),
		zap.Float64("total_price", totalPrice))

	// 7. Notify asynchronously. The booking is already committed; a failed
	// send is logged and never surfaced to the customer.
	go s.notify(booking, vendor)

	resp := response.BookingToResponse(booking, utils.FormatCurrency(booking.TotalPrice, vendor.Currency))
	return &resp, nil
}

func (s *bookingService) notify(booking *entity.Booking, vendor *entity.Vendor) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.mail.SendBookingConfirmation(ctx, booking, vendor); err != nil {
		s.log.Warn("Failed to send booking confirmation",
			zap.Error(err), zap.String("booking_number", booking.BookingNumber))
	}

	user, err := s.repo.User.FindByID(ctx, vendor.UserID)
	if err != nil || user == nil {
		s.log.Warn("Could not resolve vendor email for notice",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return
	}

	if err := s.mail.SendVendorNotice(ctx, booking, vendor, user.Email); err != nil {
		s.log.Warn("Failed to send vendor notice",
			zap.Error(err), zap.String("booking_number", booking.BookingNumber))
	}
}

// vendorFor resolves the caller's vendor profile for owner checks.
func (s *bookingService) vendorFor(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.repo.Vendor.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find vendor by user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to look up vendor profile")
	}
	if vendor == nil {
		return nil, fmt.Errorf("vendor profile not found")
	}
	return vendor, nil
}

func (s *bookingService) ListBookings(ctx context.Context, userID uuid.UUID, fulfilled *bool, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	vendor, err := s.vendorFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByVendorID(ctx, vendor.ID, fulfilled, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to list bookings")
	}

	total, err := s.repo.Booking.CountByVendorID(ctx, vendor.ID, fulfilled)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to count bookings")
	}

	items := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = response.BookingToResponse(b, utils.FormatCurrency(b.TotalPrice, vendor.Currency))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*response.BookingResponse, error) {
	vendor, err := s.vendorFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("failed to look up booking")
	}
	if booking == nil || booking.VendorID != vendor.ID {
		return nil, fmt.Errorf("booking %s not found", bookingID.String())
	}

	resp := response.BookingToResponse(booking, utils.FormatCurrency(booking.TotalPrice, vendor.Currency))
	return &resp, nil
}

// SetFulfilled toggles the fulfilled flag. Setting an already-set flag is a
// no-op, not an error.
func (s *bookingService) SetFulfilled(ctx context.Context, userID, bookingID uuid.UUID, fulfilled bool) (*response.BookingResponse, error) {
	vendor, err := s.vendorFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("failed to look up booking")
	}
	if booking == nil || booking.VendorID != vendor.ID {
		return nil, fmt.Errorf("booking %s not found", bookingID.String())
	}

	if booking.IsFulfilled != fulfilled {
		if err := s.repo.Booking.SetFulfilled(ctx, bookingID, fulfilled); err != nil {
			s.log.Error("Failed to update fulfilled flag",
				zap.Error(err), zap.String("booking_id", bookingID.String()))
			return nil, fmt.Errorf("failed to update booking")
		}
		booking.IsFulfilled = fulfilled

		s.log.Info("Booking fulfillment updated",
			zap.String("booking_id", bookingID.String()),
			zap.Bool("fulfilled", fulfilled))
	}

	resp := response.BookingToResponse(booking, utils.FormatCurrency(booking.TotalPrice, vendor.Currency))
	return &resp, nil
}
