package wire

import (
	"fastlane-booking/internal/adaptor"
	"fastlane-booking/internal/data/repository"
	"fastlane-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// All catalog management requires authentication. The public reads the
	// catalog through the vendor storefront page instead.
	r.Route("/api/admin/categories", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/", catalogHandler.CreateCategory)
		r.Get("/", catalogHandler.ListCategories)
		r.Put("/{id}", catalogHandler.RenameCategory)
		r.Delete("/{id}", catalogHandler.DeleteCategory)
	})

	r.Route("/api/admin/activities", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/", catalogHandler.CreateActivity)
		r.Get("/", catalogHandler.ListActivities)
		r.Put("/{id}", catalogHandler.UpdateActivity)
		r.Delete("/{id}", catalogHandler.DeleteActivity)
	})
}
