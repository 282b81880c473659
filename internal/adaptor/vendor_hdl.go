package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"fastlane-booking/internal/dto/request"
	"fastlane-booking/internal/usecase"
	"fastlane-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VendorHandler struct {
	service usecase.VendorService
	log     *zap.Logger
}

func NewVendorHandler(service usecase.VendorService, log *zap.Logger) *VendorHandler {
	return &VendorHandler{
		service: service,
		log:     log.With(zap.String("handler", "vendor")),
	}
}

// GetPublicPage handles GET /api/vendors/{idOrSlug} (public storefront)
func (h *VendorHandler) GetPublicPage(w http.ResponseWriter, r *http.Request) {
	idOrSlug := chi.URLParam(r, "idOrSlug")
	if idOrSlug == "" {
		utils.ResponseBadRequest(w, "Vendor ID or slug is required", nil)
		return
	}

	page, err := h.service.GetPublicPage(r.Context(), idOrSlug)
	if err != nil {
		h.handleServiceError(w, err, "get vendor page")
		return
	}

	utils.ResponseSuccess(w, "success", page)
}

// GetProfile handles GET /api/admin/profile (protected)
func (h *VendorHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// UpdateProfile handles PUT /api/admin/profile (protected)
func (h *VendorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateVendorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// CheckSlug handles GET /api/admin/slug/check?slug=... (protected)
func (h *VendorHandler) CheckSlug(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	slug := r.URL.Query().Get("slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Slug query parameter is required", nil)
		return
	}

	availability, err := h.service.CheckSlug(r.Context(), userID, slug)
	if err != nil {
		h.handleServiceError(w, err, "check slug")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// UpdateSlug handles PUT /api/admin/slug (protected)
func (h *VendorHandler) UpdateSlug(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateSlugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profile, err := h.service.UpdateSlug(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update slug")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

func (h *VendorHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already in use"):
		h.log.Warn(operation+" failed - slug taken",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
