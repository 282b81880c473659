package repository

import (
	"context"
	"fmt"

	"fastlane-booking/internal/data/entity"
	"fastlane-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	SlugTaken(ctx context.Context, slug string, excludeVendorID uuid.UUID) (bool, error)
}

type vendorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVendorRepository(db database.PgxIface, log *zap.Logger) VendorRepository {
	return &vendorRepository{
		db:  db,
		log: log.With(zap.String("repository", "vendor")),
	}
}

const vendorColumns = `id, user_id, name, description, location, currency,
	profile_picture_url, cover_image_url, how_to_book, slug, created_at, updated_at`

func (r *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, user_id, name, description, location, currency,
			profile_picture_url, cover_image_url, how_to_book, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		vendor.ID,
		vendor.UserID,
		vendor.Name,
		vendor.Description,
		vendor.Location,
		vendor.Currency,
		vendor.ProfilePictureURL,
		vendor.CoverImageURL,
		vendor.HowToBook,
		vendor.Slug,
		vendor.CreatedAt,
		vendor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create vendor",
			zap.Error(err),
			zap.String("user_id", vendor.UserID.String()),
		)
		return fmt.Errorf("create vendor for user %s: %w", vendor.UserID.String(), err)
	}

	return nil
}

func (r *vendorRepository) scanVendor(row pgx.Row) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := row.Scan(
		&vendor.ID,
		&vendor.UserID,
		&vendor.Name,
		&vendor.Description,
		&vendor.Location,
		&vendor.Currency,
		&vendor.ProfilePictureURL,
		&vendor.CoverImageURL,
		&vendor.HowToBook,
		&vendor.Slug,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	query := fmt.Sprintf(`SELECT %s FROM vendors WHERE id = $1`, vendorColumns)

	vendor, err := r.scanVendor(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vendor by ID",
			zap.Error(err),
			zap.String("vendor_id", id.String()),
		)
		return nil, fmt.Errorf("find vendor by ID %s: %w", id.String(), err)
	}

	return vendor, nil
}

func (r *vendorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	query := fmt.Sprintf(`SELECT %s FROM vendors WHERE user_id = $1`, vendorColumns)

	vendor, err := r.scanVendor(r.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vendor by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find vendor by user ID %s: %w", userID.String(), err)
	}

	return vendor, nil
}

func (r *vendorRepository) FindBySlug(ctx context.Context, slug string) (*entity.Vendor, error) {
	query := fmt.Sprintf(`SELECT %s FROM vendors WHERE slug = $1`, vendorColumns)

	vendor, err := r.scanVendor(r.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vendor by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find vendor by slug %s: %w", slug, err)
	}

	return vendor, nil
}

func (r *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		UPDATE vendors
		SET name = $2, description = $3, location = $4, currency = $5,
		    profile_picture_url = $6, cover_image_url = $7, how_to_book = $8,
		    slug = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		vendor.ID,
		vendor.Name,
		vendor.Description,
		vendor.Location,
		vendor.Currency,
		vendor.ProfilePictureURL,
		vendor.CoverImageURL,
		vendor.HowToBook,
		vendor.Slug,
		vendor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update vendor",
			zap.Error(err),
			zap.String("vendor_id", vendor.ID.String()),
		)
		return fmt.Errorf("update vendor %s: %w", vendor.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vendor %s not found", vendor.ID.String())
	}

	return nil
}

func (r *vendorRepository) SlugTaken(ctx context.Context, slug string, excludeVendorID uuid.UUID) (bool, error) {
	query := `SELECT COUNT(*) FROM vendors WHERE slug = $1 AND id != $2`

	var count int64
	err := r.db.QueryRow(ctx, query, slug, excludeVendorID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to check slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return false, fmt.Errorf("check slug %s: %w", slug, err)
	}

	return count > 0, nil
}
