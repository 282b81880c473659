package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"fastlane-booking/internal/dto/request"
	"fastlane-booking/internal/usecase"
	"fastlane-booking/pkg/utils"

	"go.uber.org/zap"
)

type LeadHandler struct {
	service usecase.LeadService
	log     *zap.Logger
}

func NewLeadHandler(service usecase.LeadService, log *zap.Logger) *LeadHandler {
	return &LeadHandler{
		service: service,
		log:     log.With(zap.String("handler", "lead")),
	}
}

// CreateLead handles POST /api/leads (public)
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req request.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.CreateLead(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "create lead")
		return
	}

	utils.ResponseCreated(w, "success", nil)
}

func (h *LeadHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
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
