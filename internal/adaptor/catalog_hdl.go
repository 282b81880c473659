package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"fastlane-booking/internal/dto/request"
	"fastlane-booking/internal/usecase"
	"fastlane-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ==================== CATEGORIES ====================

// CreateCategory handles POST /api/admin/categories (protected)
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create category")
		return
	}

	utils.ResponseCreated(w, "success", category)
}

// ListCategories handles GET /api/admin/categories (protected)
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	categories, err := h.service.ListCategories(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}

// RenameCategory handles PUT /api/admin/categories/{id} (protected)
func (h *CatalogHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid category ID", nil)
		return
	}

	var req request.RenameCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.RenameCategory(r.Context(), userID, categoryID, &req)
	if err != nil {
		h.handleServiceError(w, err, "rename category")
		return
	}

	utils.ResponseSuccess(w, "success", category)
}

// DeleteCategory handles DELETE /api/admin/categories/{id} (protected)
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid category ID", nil)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), userID, categoryID); err != nil {
		h.handleServiceError(w, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== ACTIVITIES ====================

// CreateActivity handles POST /api/admin/activities (protected)
func (h *CatalogHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	activity, err := h.service.CreateActivity(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create activity")
		return
	}

	utils.ResponseCreated(w, "success", activity)
}

// ListActivities handles GET /api/admin/activities (protected)
func (h *CatalogHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	activities, err := h.service.ListActivities(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "list activities")
		return
	}

	utils.ResponseSuccess(w, "success", activities)
}

// UpdateActivity handles PUT /api/admin/activities/{id} (protected)
func (h *CatalogHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	activityID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid activity ID", nil)
		return
	}

	var req request.ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	activity, err := h.service.UpdateActivity(r.Context(), userID, activityID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update activity")
		return
	}

	utils.ResponseSuccess(w, "success", activity)
}

// DeleteActivity handles DELETE /api/admin/activities/{id} (protected)
func (h *CatalogHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	activityID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid activity ID", nil)
		return
	}

	if err := h.service.DeleteActivity(r.Context(), userID, activityID); err != nil {
		h.handleServiceError(w, err, "delete activity")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
