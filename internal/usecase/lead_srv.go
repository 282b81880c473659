package usecase

import (
	"context"
	"fmt"
	"time"

	"fastlane-booking/internal/data/entity"
	"fastlane-booking/internal/data/repository"
	"fastlane-booking/internal/dto/request"
	"fastlane-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LeadService interface {
	CreateLead(ctx context.Context, req *request.CreateLeadRequest) error
}

type leadService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLeadService(repo *repository.Repository, log *zap.Logger) LeadService {
	return &leadService{
		repo: repo,
		log:  log.With(zap.String("service", "lead")),
	}
}

func (s *leadService) CreateLead(ctx context.Context, req *request.CreateLeadRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("CreateLead validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	lead := &entity.Lead{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BusinessName: req.BusinessName,
		ContactEmail: req.ContactEmail,
		BusinessType: req.BusinessType,
		Message:      req.Message,
	}

	if err := s.repo.Lead.Create(ctx, lead); err != nil {
		s.log.Error("Failed to create lead",
			zap.Error(err), zap.String("business_name", req.BusinessName))
		return fmt.Errorf("failed to submit request")
	}

	s.log.Info("Lead captured",
		zap.String("lead_id", lead.ID.String()),
		zap.String("business_type", req.BusinessType))

	return nil
}
