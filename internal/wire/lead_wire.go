package wire

import (
	"fastlane-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireLead(r chi.Router, leadHandler *adaptor.LeadHandler) {
	// POST /api/leads - Prospective vendor interest form (public)
	r.Post("/api/leads", leadHandler.CreateLead)
}
