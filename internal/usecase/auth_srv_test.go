package usecase

import (
	"context"
	"testing"

	"fastlane-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegisterSeedsVendorProfile(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	auth, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:        "owner@example.com",
		Password:     "correct-horse-battery",
		BusinessName: "Beach Club",
		Currency:     "TRY",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, auth.VendorID)
	assert.NotEmpty(t, auth.Token)

	vendor, err := repo.Vendor.FindByUserID(context.Background(), mustUUID(t, auth.UserID))
	require.NoError(t, err)
	require.NotNil(t, vendor)
	assert.Equal(t, "TRY", vendor.Currency)
	require.NotNil(t, vendor.Name)
	assert.Equal(t, "Beach Club", *vendor.Name)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	req := &request.RegisterRequest{
		Email:        "owner@example.com",
		Password:     "correct-horse-battery",
		BusinessName: "Beach Club",
	}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLoginAndLogout(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:        "owner@example.com",
		Password:     "correct-horse-battery",
		BusinessName: "Beach Club",
	})
	require.NoError(t, err)

	auth, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "owner@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)

	session, err := repo.Session.FindValidSession(context.Background(), auth.Token)
	require.NoError(t, err)
	require.NotNil(t, session)

	require.NoError(t, svc.Logout(context.Background(), auth.Token))

	session, err = repo.Session.FindValidSession(context.Background(), auth.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:        "owner@example.com",
		Password:     "correct-horse-battery",
		BusinessName: "Beach Club",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}
