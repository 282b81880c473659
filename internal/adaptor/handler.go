package adaptor

import (
	"fastlane-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Vendor  *VendorHandler
	Catalog *CatalogHandler
	Booking *BookingHandler
	Lead    *LeadHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Vendor:  NewVendorHandler(service.Vendor, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Booking: NewBookingHandler(service.Booking, log),
		Lead:    NewLeadHandler(service.Lead, log),
	}
}
