package usecase

import (
	"context"
	"fmt"
	"time"

	"fastlane-booking/internal/data/entity"
	"fastlane-booking/internal/data/repository"
	"fastlane-booking/internal/dto/request"
	"fastlane-booking/internal/dto/response"
	"fastlane-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	RenameCategory(ctx context.Context, userID, categoryID uuid.UUID, req *request.RenameCategoryRequest) (*response.CategoryResponse, error)
	// DeleteCategory removes the category and orphans its activities. It never
	// deletes activities.
	DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error
	ListCategories(ctx context.Context, userID uuid.UUID) ([]response.CategoryResponse, error)

	CreateActivity(ctx context.Context, userID uuid.UUID, req *request.ActivityRequest) (*response.ActivityResponse, error)
	UpdateActivity(ctx context.Context, userID, activityID uuid.UUID, req *request.ActivityRequest) (*response.ActivityResponse, error)
	DeleteActivity(ctx context.Context, userID, activityID uuid.UUID) error
	ListActivities(ctx context.Context, userID uuid.UUID) ([]response.ActivityResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) findOwn(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.repo.Vendor.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find vendor by user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to look up vendor profile")
	}
	if vendor == nil {
		return nil, fmt.Errorf("vendor profile not found")
	}
	return vendor, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, userID uuid.UUID, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("CreateCategory validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, err := s.findOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	category := &entity.Category{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		VendorID: vendor.ID,
		Name:     req.Name,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to create category")
	}

	s.log.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("vendor_id", vendor.ID.String()))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *catalogService) ownedCategory(ctx context.Context, vendor *entity.Vendor, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to find category", zap.Error(err), zap.String("category_id", categoryID.String()))
		return nil, fmt.Errorf("failed to look up category")
	}
	if category == nil || category.VendorID != vendor.ID {
		return nil, fmt.Errorf("category %s not found", categoryID.String())
	}
	return category, nil
}

func (s *catalogService) RenameCategory(ctx context.Context, userID, categoryID uuid.UUID, req *request.RenameCategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("RenameCategory validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, err := s.findOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	category, err := s.ownedCategory(ctx, vendor, categoryID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Category.Rename(ctx, categoryID, req.Name); err != nil {
		s.log.Error("Failed to rename category",
			zap.Error(err), zap.String("category_id", categoryID.String()))
		return nil, fmt.Errorf("failed to rename category")
	}
	category.Name = req.Name

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	vendor, err := s.findOwn(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := s.ownedCategory(ctx, vendor, categoryID); err != nil {
		return err
	}

	// Orphan the activities first so nothing dangles if the delete fails.
	if err := s.repo.Activity.DetachCategory(ctx, categoryID); err != nil {
		s.log.Error("Failed to detach activities from category",
			zap.Error(err), zap.String("category_id", categoryID.String()))
		return fmt.Errorf("failed to delete category")
	}

	if err := s.repo.Category.Delete(ctx, categoryID); err != nil {
		s.log.Error("Failed to delete category",
			zap.Error(err), zap.String("category_id", categoryID.String()))
		return fmt.Errorf("failed to delete category")
	}

	s.log.Info("Category deleted",
		zap.String("category_id", categoryID.String()),
		zap.String("vendor_id", vendor.ID.String()))

	return nil
}

func (s *catalogService) ListCategories(ctx context.Context, userID uuid.UUID) ([]response.CategoryResponse, error) {
	vendor, err := s.findOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.Category.FindByVendorID(ctx, vendor.ID)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to list categories")
	}

	items := make([]response.CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = response.CategoryToResponse(c)
	}
	return items, nil
}

// applyActivityRequest maps a validated request onto an activity entity and
// enforces the cross-field tour invariant.
func (s *catalogService) applyActivityRequest(ctx context.Context, vendor *entity.Vendor, activity *entity.Activity, req *request.ActivityRequest) error {
	activityType := entity.ActivityType(req.ActivityType)

	if activityType == entity.ActivityTypeTour {
		if len(req.ActiveDays) == 0 || req.FixedStartTime == nil || req.PricePerParticipant == nil {
			return fmt.Errorf("validation failed: tour activities require active_days, fixed_start_time and price_per_participant")
		}
	} else {
		if len(req.ActiveDays) > 0 || req.FixedStartTime != nil || req.PricePerParticipant != nil || req.MaxParticipantsPerDay != nil {
			return fmt.Errorf("validation failed: tour fields are only valid for tour activities")
		}
	}

	var categoryID *uuid.UUID
	if req.CategoryID != nil {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return fmt.Errorf("validation failed: invalid category id")
		}
		if _, err := s.ownedCategory(ctx, vendor, id); err != nil {
			return err
		}
		categoryID = &id
	}

	activity.CategoryID = categoryID
	activity.Title = req.Title
	activity.Description = req.Description
	activity.Price = req.Price
	activity.ImageURL = req.ImageURL
	activity.DurationMinutes = req.DurationMinutes
	activity.MeetingPoint = req.MeetingPoint
	activity.Requirements = req.Requirements
	activity.MaxParticipants = req.MaxParticipants
	activity.Type = activityType
	activity.ActiveDays = req.ActiveDays
	activity.FixedStartTime = req.FixedStartTime
	activity.PricePerParticipant = req.PricePerParticipant
	activity.MaxParticipantsPerDay = req.MaxParticipantsPerDay
	activity.UpdatedAt = time.Now()

	return nil
}

func (s *catalogService) CreateActivity(ctx context.Context, userID uuid.UUID, req *request.ActivityRequest) (*response.ActivityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("CreateActivity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, err := s.findOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	activity := &entity.Activity{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		VendorID: vendor.ID,
	}

	if err := s.applyActivityRequest(ctx, vendor, activity, req); err != nil {
		return nil, err
	}

	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		s.log.Error("Failed to create activity",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to create activity")
	}

	s.log.Info("Activity created",
		zap.String("activity_id", activity.ID.String()),
		zap.String("vendor_id", vendor.ID.String()),
		zap.String("activity_type", req.ActivityType))

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *catalogService) ownedActivity(ctx context.Context, vendor *entity.Vendor, activityID uuid.UUID) (*entity.Activity, error) {
	activity, err := s.repo.Activity.FindByID(ctx, activityID)
	if err != nil {
		s.log.Error("Failed to find activity", zap.Error(err), zap.String("activity_id", activityID.String()))
		return nil, fmt.Errorf("failed to look up activity")
	}
	if activity == nil || activity.VendorID != vendor.ID {
		return nil, fmt.Errorf("activity %s not found", activityID.String())
	}
	return activity, nil
}

func (s *catalogService) UpdateActivity(ctx context.Context, userID, activityID uuid.UUID, req *request.ActivityRequest) (*response.ActivityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("UpdateActivity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, err := s.findOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	activity, err := s.ownedActivity(ctx, vendor, activityID)
	if err != nil {
		return nil, err
	}

	if err := s.applyActivityRequest(ctx, vendor, activity, req); err != nil {
		return nil, err
	}

	if err := s.repo.Activity.Update(ctx, activity); err != nil {
		s.log.Error("Failed to update activity",
			zap.Error(err), zap.String("activity_id", activityID.String()))
		return nil, fmt.Errorf("failed to update activity")
	}

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *catalogService) DeleteActivity(ctx context.Context, userID, activityID uuid.UUID) error {
	vendor, err := s.findOwn(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := s.ownedActivity(ctx, vendor, activityID); err != nil {
		return err
	}

	if err := s.repo.Activity.Delete(ctx, activityID); err != nil {
		s.log.Error("Failed to delete activity",
			zap.Error(err), zap.String("activity_id", activityID.String()))
		return fmt.Errorf("failed to delete activity")
	}

	s.log.Info("Activity deleted",
		zap.String("activity_id", activityID.String()),
		zap.String("vendor_id", vendor.ID.String()))

	return nil
}

func (s *catalogService) ListActivities(ctx context.Context, userID uuid.UUID) ([]response.ActivityResponse, error) {
	vendor, err := s.findOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	activities, err := s.repo.Activity.FindByVendorID(ctx, vendor.ID)
	if err != nil {
		s.log.Error("Failed to list activities", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to list activities")
	}

	items := make([]response.ActivityResponse, len(activities))
	for i, a := range activities {
		items[i] = response.ActivityToResponse(a)
	}
	return items, nil
}
