package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"fastlane-booking/internal/data/entity"
	"fastlane-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. pgx connections cannot be stubbed at the
// driver level the way database/sql can, so the services are tested against
// the repository interfaces directly.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeVendorRepo struct {
	vendors map[uuid.UUID]*entity.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[uuid.UUID]*entity.Vendor)}
}

func (f *fakeVendorRepo) Create(_ context.Context, vendor *entity.Vendor) error {
	f.vendors[vendor.ID] = vendor
	return nil
}

func (f *fakeVendorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return f.vendors[id], nil
}

func (f *fakeVendorRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	for _, v := range f.vendors {
		if v.UserID == userID {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVendorRepo) FindBySlug(_ context.Context, slug string) (*entity.Vendor, error) {
	for _, v := range f.vendors {
		if v.Slug != nil && *v.Slug == slug {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVendorRepo) Update(_ context.Context, vendor *entity.Vendor) error {
	f.vendors[vendor.ID] = vendor
	return nil
}

func (f *fakeVendorRepo) SlugTaken(_ context.Context, slug string, excludeVendorID uuid.UUID) (bool, error) {
	for _, v := range f.vendors {
		if v.ID != excludeVendorID && v.Slug != nil && *v.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
	deleted    []uuid.UUID
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) FindByVendorID(_ context.Context, vendorID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		if c.VendorID == vendorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Rename(_ context.Context, id uuid.UUID, name string) error {
	if c, ok := f.categories[id]; ok {
		c.Name = name
	}
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.categories, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeActivityRepo struct {
	activities map[uuid.UUID]*entity.Activity
	detached   []uuid.UUID
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: make(map[uuid.UUID]*entity.Activity)}
}

func (f *fakeActivityRepo) Create(_ context.Context, activity *entity.Activity) error {
	f.activities[activity.ID] = activity
	return nil
}

func (f *fakeActivityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Activity, error) {
	return f.activities[id], nil
}

func (f *fakeActivityRepo) FindByVendorID(_ context.Context, vendorID uuid.UUID) ([]*entity.Activity, error) {
	var out []*entity.Activity
	for _, a := range f.activities {
		if a.VendorID == vendorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeActivityRepo) Update(_ context.Context, activity *entity.Activity) error {
	f.activities[activity.ID] = activity
	return nil
}

func (f *fakeActivityRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.activities, id)
	return nil
}

func (f *fakeActivityRepo) DetachCategory(_ context.Context, categoryID uuid.UUID) error {
	f.detached = append(f.detached, categoryID)
	for _, a := range f.activities {
		if a.CategoryID != nil && *a.CategoryID == categoryID {
			a.CategoryID = nil
		}
	}
	return nil
}

type fakeBookingRepo struct {
	bookings        map[uuid.UUID]*entity.Booking
	createErr       error
	setFulfilledLog []bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByVendorID(_ context.Context, vendorID uuid.UUID, fulfilled *bool, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.VendorID == vendorID && (fulfilled == nil || b.IsFulfilled == *fulfilled) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByVendorID(_ context.Context, vendorID uuid.UUID, fulfilled *bool) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.VendorID == vendorID && (fulfilled == nil || b.IsFulfilled == *fulfilled) {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) FindByVendorSlot(_ context.Context, vendorID uuid.UUID, date time.Time, bookingTime string) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.VendorID == vendorID && b.BookingDate.Equal(date) && b.BookingTime == bookingTime {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByVendorAndEmail(_ context.Context, vendorID uuid.UUID, email string) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.VendorID == vendorID && b.CustomerEmail == email {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) SetFulfilled(_ context.Context, id uuid.UUID, fulfilled bool) error {
	f.setFulfilledLog = append(f.setFulfilledLog, fulfilled)
	if b, ok := f.bookings[id]; ok {
		b.IsFulfilled = fulfilled
	}
	return nil
}

type fakeLeadRepo struct {
	leads []*entity.Lead
}

func (f *fakeLeadRepo) Create(_ context.Context, lead *entity.Lead) error {
	f.leads = append(f.leads, lead)
	return nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}
	s := f.sessions[id]
	if s == nil || s.RevokedAt != nil || s.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	id, err := uuid.Parse(token)
	if err != nil {
		return nil
	}
	if s, ok := f.sessions[id]; ok {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

// fakeMailer records sends. Dispatch happens on a goroutine, so reads go
// through the mutex and tests wait on the done channel.
type fakeMailer struct {
	mu            sync.Mutex
	confirmations []string
	notices       []string
	done          chan struct{}
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{done: make(chan struct{}, 32)}
}

func (m *fakeMailer) SendBookingConfirmation(_ context.Context, booking *entity.Booking, _ *entity.Vendor) error {
	m.mu.Lock()
	m.confirmations = append(m.confirmations, booking.CustomerEmail)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func (m *fakeMailer) SendVendorNotice(_ context.Context, _ *entity.Booking, _ *entity.Vendor, vendorEmail string) error {
	m.mu.Lock()
	m.notices = append(m.notices, vendorEmail)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("invalid uuid %q: %v", s, err)
	}
	return id
}

func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		User:     newFakeUserRepo(),
		Session:  newFakeSessionRepo(),
		Vendor:   newFakeVendorRepo(),
		Category: newFakeCategoryRepo(),
		Activity: newFakeActivityRepo(),
		Booking:  newFakeBookingRepo(),
		Lead:     &fakeLeadRepo{},
	}
}
