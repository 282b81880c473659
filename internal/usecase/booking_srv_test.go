package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fastlane-booking/internal/data/entity"
	"fastlane-booking/internal/data/repository"
	"fastlane-booking/internal/dto/request"
	"fastlane-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
		Booking: utils.BookingConfig{
			CustomerCapEnabled: true,
			CustomerCapMax:     3,
			DefaultCurrency:    "EUR",
		},
	}
}

func seedVendor(repo *repository.Repository, currency string) *entity.Vendor {
	now := time.Now()
	name := "Sunset Cruises"
	vendor := &entity.Vendor{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:       uuid.New(),
		Name:         &name,
		Currency:     currency,
	}
	repo.Vendor.Create(context.Background(), vendor)

	user := &entity.User{
		Base:     entity.Base{ID: vendor.UserID, CreatedAt: now, UpdatedAt: now},
		Email:    "owner@sunset-cruises.example",
		IsActive: true,
	}
	repo.User.Create(context.Background(), user)

	return vendor
}

func seedRegularActivity(repo *repository.Repository, vendorID uuid.UUID, title string, price float64) *entity.Activity {
	now := time.Now()
	activity := &entity.Activity{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		VendorID:     vendorID,
		Title:        title,
		Price:        price,
		Type:         entity.ActivityTypeRegular,
	}
	repo.Activity.Create(context.Background(), activity)
	return activity
}

func seedTourActivity(repo *repository.Repository, vendorID uuid.UUID, title string, perParticipant float64) *entity.Activity {
	now := time.Now()
	start := "18:00:00"
	activity := &entity.Activity{
		BaseNoDelete:        entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		VendorID:            vendorID,
		Title:               title,
		Type:                entity.ActivityTypeTour,
		ActiveDays:          []int{5, 6, 7},
		FixedStartTime:      &start,
		PricePerParticipant: &perParticipant,
	}
	repo.Activity.Create(context.Background(), activity)
	return activity
}

func checkoutRequest(vendorID uuid.UUID, items []request.BookingItemRequest) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		VendorID:      vendorID.String(),
		Items:         items,
		BookingDate:   "2026-09-12",
		BookingTime:   "18:00",
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
	}
}

func TestCreateBookingRegularPricing(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")
	activity := seedRegularActivity(repo, vendor.ID, "Kayak Rental", 25)

	svc := NewBookingService(repo, testConfig(), newFakeMailer(), zap.NewNop())

	req := checkoutRequest(vendor.ID, []request.BookingItemRequest{
		{ActivityID: activity.ID.String(), Quantity: 2},
	})

	booking, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 50.0, booking.TotalPrice)
	assert.Equal(t, "€50.00", booking.FormattedTotal)
	require.Len(t, booking.Details, 1)
	assert.Equal(t, 25.0, booking.Details[0].PriceAtPurchase)
	assert.Equal(t, "Kayak Rental", booking.Details[0].Name)
	assert.False(t, booking.IsPaid)
	assert.False(t, booking.IsFulfilled)
	assert.NotEmpty(t, booking.BookingNumber)
}

func TestCreateBookingTourPricingIsPerParticipant(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")
	tour := seedTourActivity(repo, vendor.ID, "Sunset Cruise", 40)

	svc := NewBookingService(repo, testConfig(), newFakeMailer(), zap.NewNop())

	// Quantity must not multiply tour lines; only the participant count does.
	req := checkoutRequest(vendor.ID, []request.BookingItemRequest{
		{ActivityID: tour.ID.String(), Quantity: 1},
	})
	req.ParticipantCount = 3

	booking, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 120.0, booking.TotalPrice)
	assert.Equal(t, 3, booking.ParticipantCount)
	require.Len(t, booking.Details, 1)
	assert.Equal(t, 40.0, booking.Details[0].PriceAtPurchase)
}

func TestCreateBookingMixedCart(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")
	regular := seedRegularActivity(repo, vendor.ID, "Kayak Rental", 25)
	tour := seedTourActivity(repo, vendor.ID, "Sunset Cruise", 40)

	svc := NewBookingService(repo, testConfig(), newFakeMailer(), zap.NewNop())

	req := checkoutRequest(vendor.ID, []request.BookingItemRequest{
		{ActivityID: regular.ID.String(), Quantity: 2},
		{ActivityID: tour.ID.String(), Quantity: 1},
	})
	req.ParticipantCount = 3

	booking, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 170.0, booking.TotalPrice)
}

func TestCreateBookingSnapshotSurvivesPriceEdit(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")
	activity := seedRegularActivity(repo, vendor.ID, "Kayak Rental", 25)

	svc := NewBookingService(repo, testConfig(), newFakeMailer(), zap.NewNop())

	req := checkoutRequest(vendor.ID, []request.BookingItemRequest{
		{ActivityID: activity.ID.String(), Quantity: 1},
	})

	booking, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	// Vendor doubles the price after checkout.
	activity.Price = 50

	stored, err := repo.Booking.FindByID(context.Background(), uuid.MustParse(booking.ID))
	require.NoError(t, err)
	assert.Equal(t, 25.0, stored.Details[0].PriceAtPurchase)
	assert.Equal(t, 25.0, stored.TotalPrice)
}

func TestCreateBookingSlotConflictPrecheck(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")
	tour := seedTourActivity(repo, vendor.ID, "Sunset Cruise", 40)

	svc := NewBookingService(repo, testConfig(), newFakeMailer(), zap.NewNop())

	first := checkoutRequest(vendor.ID, []request.BookingItemRequest{
		{ActivityID: tour.ID.String(), Quantity: 1},
	})
	_, err := svc.CreateBooking(context.Background(), first)
	require.NoError(t, err)

	second := checkoutRequest(vendor.ID, []request.BookingItemRequest{
		{ActivityID: tour.ID.String(), Quantity: 1},
	})
	second.CustomerEmail = "other@example.com"

	_, err = svc.CreateBooking(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestCreateBookingDuplicateSlotFromStore(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")
	tour := seedTourActivity(repo, vendor.ID, "Sunset Cruise", 40)

	// Simulate losing the race: the pre-check sees nothing but the unique
	// constraint fires on insert.
	bookingRepo := repo.Booking.(*fakeBookingRepo)
	bookingRepo.createErr = fmt.Errorf("claim slot: %w", repository.ErrDuplicateSlot)

	svc := NewBookingService(repo, testConfig(), newFakeMailer(), zap.NewNop())

	req := checkoutRequest(vendor.ID, []request.BookingItemRequest{
		{ActivityID: tour.ID.String(), Quantity: 1},
	})

	_, err := svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestCreateBookingCustomerCap(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")
	activity := seedRegularActivity(repo, vendor.ID, "Kayak Rental", 25)

	config := testConfig()
	svc := NewBookingService(repo, config, newFakeMailer(), zap.NewNop())

	// Distinct times so the slot claim never interferes with the cap.
	for i := 0; i < config.Booking.CustomerCapMax; i++ {
		req := checkoutRequest(vendor.ID, []request.BookingItemRequest{
			{ActivityID: activity.ID.String(), Quantity: 1},
		})
		req.BookingTime = fmt.Sprintf("1%d:00", i)
		_, err := svc.CreateBooking(context.Background(), req)
		require.NoError(t, err)
	}

	req := checkoutRequest(vendor.ID, []request.BookingItemRequest{
		{ActivityID: activity.ID.String(), Quantity: 1},
	})
	req.BookingTime = "19:00"
	_, err := svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrLimitExceeded)

	// A different customer is unaffected.
	req.CustomerEmail = "grace@example.com"
	_, err = svc.CreateBooking(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBookingCapDisabled(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")
	activity := seedRegularActivity(repo, vendor.ID, "Kayak Rental", 25)

	config := testConfig()
	config.Booking.CustomerCapEnabled = false
	svc := NewBookingService(repo, config, newFakeMailer(), zap.NewNop())

	for i := 0; i < 5; i++ {
		req := checkoutRequest(vendor.ID, []request.BookingItemRequest{
			{ActivityID: activity.ID.String(), Quantity: 1},
		})
		req.BookingTime = fmt.Sprintf("1%d:00", i)
		_, err := svc.CreateBooking(context.Background(), req)
		require.NoError(t, err)
	}
}

func TestCreateBookingRejectsForeignActivity(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")
	other := seedVendor(repo, "EUR")
	foreign := seedRegularActivity(repo, other.ID, "Not Yours", 10)

	svc := NewBookingService(repo, testConfig(), newFakeMailer(), zap.NewNop())

	req := checkoutRequest(vendor.ID, []request.BookingItemRequest{
		{ActivityID: foreign.ID.String(), Quantity: 1},
	})

	_, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateBookingVendorNotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookingService(repo, testConfig(), newFakeMailer(), zap.NewNop())

	req := checkoutRequest(uuid.New(), []request.BookingItemRequest{
		{ActivityID: uuid.New().String(), Quantity: 1},
	})

	_, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateBookingSendsNotifications(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")
	activity := seedRegularActivity(repo, vendor.ID, "Kayak Rental", 25)

	mail := newFakeMailer()
	svc := NewBookingService(repo, testConfig(), mail, zap.NewNop())

	req := checkoutRequest(vendor.ID, []request.BookingItemRequest{
		{ActivityID: activity.ID.String(), Quantity: 1},
	})

	_, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	// Two sends: customer confirmation and vendor notice.
	for i := 0; i < 2; i++ {
		select {
		case <-mail.done:
		case <-time.After(2 * time.Second):
			t.Fatal("notification was not dispatched")
		}
	}

	mail.mu.Lock()
	defer mail.mu.Unlock()
	assert.Equal(t, []string{"ada@example.com"}, mail.confirmations)
	assert.Equal(t, []string{"owner@sunset-cruises.example"}, mail.notices)
}

func TestSetFulfilledIsIdempotent(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")
	activity := seedRegularActivity(repo, vendor.ID, "Kayak Rental", 25)

	svc := NewBookingService(repo, testConfig(), newFakeMailer(), zap.NewNop())

	req := checkoutRequest(vendor.ID, []request.BookingItemRequest{
		{ActivityID: activity.ID.String(), Quantity: 1},
	})
	created, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	bookingID := uuid.MustParse(created.ID)
	bookingRepo := repo.Booking.(*fakeBookingRepo)

	got, err := svc.SetFulfilled(context.Background(), vendor.UserID, bookingID, true)
	require.NoError(t, err)
	assert.True(t, got.IsFulfilled)

	// Fulfilling again is a no-op, not an error, and skips the write.
	got, err = svc.SetFulfilled(context.Background(), vendor.UserID, bookingID, true)
	require.NoError(t, err)
	assert.True(t, got.IsFulfilled)
	assert.Len(t, bookingRepo.setFulfilledLog, 1)

	got, err = svc.SetFulfilled(context.Background(), vendor.UserID, bookingID, false)
	require.NoError(t, err)
	assert.False(t, got.IsFulfilled)
	assert.Len(t, bookingRepo.setFulfilledLog, 2)
}

func TestSetFulfilledRejectsForeignBooking(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")
	intruder := seedVendor(repo, "EUR")
	activity := seedRegularActivity(repo, vendor.ID, "Kayak Rental", 25)

	svc := NewBookingService(repo, testConfig(), newFakeMailer(), zap.NewNop())

	req := checkoutRequest(vendor.ID, []request.BookingItemRequest{
		{ActivityID: activity.ID.String(), Quantity: 1},
	})
	created, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.SetFulfilled(context.Background(), intruder.UserID, uuid.MustParse(created.ID), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListBookingsFormatsVendorCurrency(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "IDR")
	activity := seedRegularActivity(repo, vendor.ID, "Snorkeling Trip", 150000)

	svc := NewBookingService(repo, testConfig(), newFakeMailer(), zap.NewNop())

	req := checkoutRequest(vendor.ID, []request.BookingItemRequest{
		{ActivityID: activity.ID.String(), Quantity: 1},
	})
	_, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	page, err := svc.ListBookings(context.Background(), vendor.UserID, nil, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Rp 150,000", page.Items[0].FormattedTotal)
	assert.Equal(t, int64(1), page.Total)
}

func TestListBookingsFulfilledFilter(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")
	activity := seedRegularActivity(repo, vendor.ID, "Kayak Rental", 25)

	svc := NewBookingService(repo, testConfig(), newFakeMailer(), zap.NewNop())

	var ids []string
	for i := 0; i < 2; i++ {
		req := checkoutRequest(vendor.ID, []request.BookingItemRequest{
			{ActivityID: activity.ID.String(), Quantity: 1},
		})
		req.BookingTime = fmt.Sprintf("1%d:00", i)
		created, err := svc.CreateBooking(context.Background(), req)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	_, err := svc.SetFulfilled(context.Background(), vendor.UserID, mustUUID(t, ids[0]), true)
	require.NoError(t, err)

	page := &request.PaginatedRequest{Page: 1, PerPage: 10}

	fulfilled := true
	got, err := svc.ListBookings(context.Background(), vendor.UserID, &fulfilled, page)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, ids[0], got.Items[0].ID)

	unfulfilled := false
	got, err = svc.ListBookings(context.Background(), vendor.UserID, &unfulfilled, page)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, ids[1], got.Items[0].ID)

	got, err = svc.ListBookings(context.Background(), vendor.UserID, nil, page)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
}
