package usecase

import (
	"context"
	"testing"

	"fastlane-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetPublicPageBySlugNestsCatalog(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")

	catalog := NewCatalogService(repo, zap.NewNop())
	category, err := catalog.CreateCategory(context.Background(), vendor.UserID, &request.CreateCategoryRequest{Name: "Cruises"})
	require.NoError(t, err)

	categoryID := category.ID
	_, err = catalog.CreateActivity(context.Background(), vendor.UserID, &request.ActivityRequest{
		CategoryID:   &categoryID,
		Title:        "Sunset Cruise",
		ActivityType: "tour",
		ActiveDays:   []int{5, 6, 7},
		FixedStartTime: func() *string {
			s := "18:00:00"
			return &s
		}(),
		PricePerParticipant: float64Ptr(40),
	})
	require.NoError(t, err)

	// An empty category should not appear on the storefront.
	_, err = catalog.CreateCategory(context.Background(), vendor.UserID, &request.CreateCategoryRequest{Name: "Empty"})
	require.NoError(t, err)

	svc := NewVendorService(repo, testConfig(), zap.NewNop())

	slug := "sunset-cruises"
	_, err = svc.UpdateSlug(context.Background(), vendor.UserID, &request.UpdateSlugRequest{Slug: slug})
	require.NoError(t, err)

	page, err := svc.GetPublicPage(context.Background(), slug)
	require.NoError(t, err)
	assert.Equal(t, vendor.ID.String(), page.ID)
	require.Len(t, page.Categories, 1)
	assert.Equal(t, "Cruises", page.Categories[0].Name)
	require.Len(t, page.Categories[0].Activities, 1)
	assert.Equal(t, "Sunset Cruise", page.Categories[0].Activities[0].Title)

	// The same page resolves by id.
	byID, err := svc.GetPublicPage(context.Background(), vendor.ID.String())
	require.NoError(t, err)
	assert.Equal(t, page.ID, byID.ID)
}

func TestGetPublicPageUnknownVendor(t *testing.T) {
	repo := newFakeRepository()
	svc := NewVendorService(repo, testConfig(), zap.NewNop())

	_, err := svc.GetPublicPage(context.Background(), "no-such-vendor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateSlugRejectsReservedAndTaken(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")
	other := seedVendor(repo, "EUR")

	svc := NewVendorService(repo, testConfig(), zap.NewNop())

	_, err := svc.UpdateSlug(context.Background(), vendor.UserID, &request.UpdateSlugRequest{Slug: "admin"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")

	_, err = svc.UpdateSlug(context.Background(), other.UserID, &request.UpdateSlugRequest{Slug: "beach-club"})
	require.NoError(t, err)

	_, err = svc.UpdateSlug(context.Background(), vendor.UserID, &request.UpdateSlugRequest{Slug: "beach-club"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in use")

	// CheckSlug reports the same outcomes without writing.
	availability, err := svc.CheckSlug(context.Background(), vendor.UserID, "beach-club")
	require.NoError(t, err)
	assert.False(t, availability.Available)

	availability, err = svc.CheckSlug(context.Background(), vendor.UserID, "quiet-cove")
	require.NoError(t, err)
	assert.True(t, availability.Available)
}

func TestUpdateProfileValidatesCurrency(t *testing.T) {
	repo := newFakeRepository()
	vendor := seedVendor(repo, "EUR")

	svc := NewVendorService(repo, testConfig(), zap.NewNop())

	bad := "USD"
	_, err := svc.UpdateProfile(context.Background(), vendor.UserID, &request.UpdateVendorProfileRequest{Currency: &bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid currency")

	good := "CHF"
	desc := "Lake cruises since 1998"
	profile, err := svc.UpdateProfile(context.Background(), vendor.UserID, &request.UpdateVendorProfileRequest{
		Currency:    &good,
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, "CHF", profile.Currency)
	require.NotNil(t, profile.Description)
	assert.Equal(t, desc, *profile.Description)
}
