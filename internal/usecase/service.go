package usecase

import (
	"fastlane-booking/internal/data/repository"
	"fastlane-booking/pkg/mailer"
	"fastlane-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Vendor  VendorService
	Catalog CatalogService
	Booking BookingService
	Lead    LeadService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, logger *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, logger),
		Vendor:  NewVendorService(repo, config, logger),
		Catalog: NewCatalogService(repo, logger),
		Booking: NewBookingService(repo, config, mail, logger),
		Lead:    NewLeadService(repo, logger),
	}
}
