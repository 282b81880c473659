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

type VendorService interface {
	// GetPublicPage resolves a storefront by UUID or slug and returns the
	// profile with the catalog nested per category.
	GetPublicPage(ctx context.Context, idOrSlug string) (*response.VendorPageResponse, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*response.VendorResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateVendorProfileRequest) (*response.VendorResponse, error)
	CheckSlug(ctx context.Context, userID uuid.UUID, slug string) (*response.SlugAvailabilityResponse, error)
	UpdateSlug(ctx context.Context, userID uuid.UUID, req *request.UpdateSlugRequest) (*response.VendorResponse, error)
}

type vendorService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewVendorService(repo *repository.Repository, config *utils.Config, log *zap.Logger) VendorService {
	return &vendorService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "vendor")),
	}
}

func (s *vendorService) GetPublicPage(ctx context.Context, idOrSlug string) (*response.VendorPageResponse, error) {
	var vendor *entity.Vendor
	var err error

	if utils.IsUUID(idOrSlug) {
		vendor, err = s.repo.Vendor.FindByID(ctx, uuid.MustParse(idOrSlug))
	} else {
		vendor, err = s.repo.Vendor.FindBySlug(ctx, idOrSlug)
	}
	if err != nil {
		s.log.Error("Failed to resolve vendor", zap.Error(err), zap.String("id_or_slug", idOrSlug))
		return nil, fmt.Errorf("failed to look up vendor")
	}
	if vendor == nil {
		return nil, fmt.Errorf("vendor %s not found", idOrSlug)
	}

	categories, err := s.repo.Category.FindByVendorID(ctx, vendor.ID)
	if err != nil {
		s.log.Error("Failed to load categories", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to load catalog")
	}

	activities, err := s.repo.Activity.FindByVendorID(ctx, vendor.ID)
	if err != nil {
		s.log.Error("Failed to load activities", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to load catalog")
	}

	// Group activities under their category. Uncategorized activities land in
	// a synthetic "Other" bucket so the storefront never hides them.
	byCategory := make(map[uuid.UUID][]response.ActivityResponse)
	var uncategorized []response.ActivityResponse
	for _, a := range activities {
		if a.CategoryID == nil {
			uncategorized = append(uncategorized, response.ActivityToResponse(a))
			continue
		}
		byCategory[*a.CategoryID] = append(byCategory[*a.CategoryID], response.ActivityToResponse(a))
	}

	page := &response.VendorPageResponse{
		VendorResponse: response.VendorToResponse(vendor),
	}
	for _, c := range categories {
		items := byCategory[c.ID]
		if len(items) == 0 {
			continue
		}
		page.Categories = append(page.Categories, response.CategoryWithActivities{
			ID:         c.ID.String(),
			Name:       c.Name,
			Activities: items,
		})
	}
	if len(uncategorized) > 0 {
		page.Categories = append(page.Categories, response.CategoryWithActivities{
			Name:       "Other",
			Activities: uncategorized,
		})
	}

	return page, nil
}

func (s *vendorService) findOwn(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
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

func (s *vendorService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.VendorResponse, error) {
	vendor, err := s.findOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateVendorProfileRequest) (*response.VendorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("UpdateProfile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, err := s.findOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vendor.Name = req.Name
	}
	if req.Description != nil {
		vendor.Description = req.Description
	}
	if req.Location != nil {
		vendor.Location = req.Location
	}
	if req.Currency != nil {
		if !utils.IsSupportedCurrency(*req.Currency) {
			return nil, fmt.Errorf("invalid currency %s", *req.Currency)
		}
		vendor.Currency = *req.Currency
	}
	if req.ProfilePictureURL != nil {
		vendor.ProfilePictureURL = req.ProfilePictureURL
	}
	if req.CoverImageURL != nil {
		vendor.CoverImageURL = req.CoverImageURL
	}
	if req.HowToBook != nil {
		vendor.HowToBook = req.HowToBook
	}
	vendor.UpdatedAt = time.Now()

	if err := s.repo.Vendor.Update(ctx, vendor); err != nil {
		s.log.Error("Failed to update vendor profile",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to update profile")
	}

	s.log.Info("Vendor profile updated", zap.String("vendor_id", vendor.ID.String()))

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) CheckSlug(ctx context.Context, userID uuid.UUID, slug string) (*response.SlugAvailabilityResponse, error) {
	vendor, err := s.findOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateSlug(slug); err != nil {
		return &response.SlugAvailabilityResponse{Slug: slug, Available: false, Reason: err.Error()}, nil
	}

	taken, err := s.repo.Vendor.SlugTaken(ctx, slug, vendor.ID)
	if err != nil {
		s.log.Error("Failed to check slug", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("failed to check slug availability")
	}
	if taken {
		return &response.SlugAvailabilityResponse{Slug: slug, Available: false, Reason: "slug is already in use"}, nil
	}

	return &response.SlugAvailabilityResponse{Slug: slug, Available: true}, nil
}

func (s *vendorService) UpdateSlug(ctx context.Context, userID uuid.UUID, req *request.UpdateSlugRequest) (*response.VendorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("UpdateSlug validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, err := s.findOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateSlug(req.Slug); err != nil {
		return nil, fmt.Errorf("validation failed: %s", err.Error())
	}

	taken, err := s.repo.Vendor.SlugTaken(ctx, req.Slug, vendor.ID)
	if err != nil {
		s.log.Error("Failed to check slug", zap.Error(err), zap.String("slug", req.Slug))
		return nil, fmt.Errorf("failed to check slug availability")
	}
	if taken {
		return nil, fmt.Errorf("slug %s is already in use", req.Slug)
	}

	vendor.Slug = &req.Slug
	vendor.UpdatedAt = time.Now()

	if err := s.repo.Vendor.Update(ctx, vendor); err != nil {
		s.log.Error("Failed to update slug",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to update slug")
	}

	s.log.Info("Vendor slug updated",
		zap.String("vendor_id", vendor.ID.String()), zap.String("slug", req.Slug))

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}
