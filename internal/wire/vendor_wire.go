package wire

import (
	"fastlane-booking/internal/adaptor"
	"fastlane-booking/internal/data/repository"
	"fastlane-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVendor(
	r chi.Router,
	vendorHandler *adaptor.VendorHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/vendors/{idOrSlug} - Public storefront page with nested catalog
	r.Get("/api/vendors/{idOrSlug}", vendorHandler.GetPublicPage)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/admin/profile - Own vendor profile
		r.Get("/api/admin/profile", vendorHandler.GetProfile)

		// PUT /api/admin/profile - Update profile fields
		r.Put("/api/admin/profile", vendorHandler.UpdateProfile)

		// GET /api/admin/slug/check?slug=... - Check slug availability
		r.Get("/api/admin/slug/check", vendorHandler.CheckSlug)

		// PUT /api/admin/slug - Claim a new slug
		r.Put("/api/admin/slug", vendorHandler.UpdateSlug)
	})
}
