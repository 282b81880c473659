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

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*entity.Activity, error)
	Update(ctx context.Context, activity *entity.Activity) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DetachCategory orphans every activity in the category (category_id set
	// NULL). Category deletion never cascades to activities.
	DetachCategory(ctx context.Context, categoryID uuid.UUID) error
}

type activityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActivityRepository(db database.PgxIface, log *zap.Logger) ActivityRepository {
	return &activityRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity")),
	}
}

const activityColumns = `id, vendor_id, category_id, title, description, price, image_url,
	duration_minutes, meeting_point, requirements, max_participants,
	activity_type, active_days, fixed_start_time, price_per_participant,
	max_participants_per_day, created_at, updated_at`

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, vendor_id, category_id, title, description, price, image_url,
			duration_minutes, meeting_point, requirements, max_participants,
			activity_type, active_days, fixed_start_time, price_per_participant,
			max_participants_per_day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.VendorID,
		activity.CategoryID,
		activity.Title,
		activity.Description,
		activity.Price,
		activity.ImageURL,
		activity.DurationMinutes,
		activity.MeetingPoint,
		activity.Requirements,
		activity.MaxParticipants,
		activity.Type,
		activity.ActiveDays,
		activity.FixedStartTime,
		activity.PricePerParticipant,
		activity.MaxParticipantsPerDay,
		activity.CreatedAt,
		activity.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create activity",
			zap.Error(err),
			zap.String("vendor_id", activity.VendorID.String()),
			zap.String("title", activity.Title),
		)
		return fmt.Errorf("create activity %s: %w", activity.Title, err)
	}

	return nil
}

func (r *activityRepository) scanActivity(row pgx.Row) (*entity.Activity, error) {
	var activity entity.Activity
	err := row.Scan(
		&activity.ID,
		&activity.VendorID,
		&activity.CategoryID,
		&activity.Title,
		&activity.Description,
		&activity.Price,
		&activity.ImageURL,
		&activity.DurationMinutes,
		&activity.MeetingPoint,
		&activity.Requirements,
		&activity.MaxParticipants,
		&activity.Type,
		&activity.ActiveDays,
		&activity.FixedStartTime,
		&activity.PricePerParticipant,
		&activity.MaxParticipantsPerDay,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities WHERE id = $1`, activityColumns)

	activity, err := r.scanActivity(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find activity by ID",
			zap.Error(err),
			zap.String("activity_id", id.String()),
		)
		return nil, fmt.Errorf("find activity by ID %s: %w", id.String(), err)
	}

	return activity, nil
}

func (r *activityRepository) FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*entity.Activity, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM activities
		WHERE vendor_id = $1
		ORDER BY created_at
	`, activityColumns)

	rows, err := r.db.Query(ctx, query, vendorID)
	if err != nil {
		r.log.Error("Failed to find activities by vendor ID",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
		)
		return nil, fmt.Errorf("find activities by vendor ID %s: %w", vendorID.String(), err)
	}
	defer rows.Close()

	var activities []*entity.Activity
	for rows.Next() {
		activity, err := r.scanActivity(rows)
		if err != nil {
			r.log.Error("Failed to scan activity row", zap.Error(err))
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activities = append(activities, activity)
	}

	return activities, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	query := `
		UPDATE activities
		SET category_id = $2, title = $3, description = $4, price = $5, image_url = $6,
		    duration_minutes = $7, meeting_point = $8, requirements = $9,
		    max_participants = $10, activity_type = $11, active_days = $12,
		    fixed_start_time = $13, price_per_participant = $14,
		    max_participants_per_day = $15, updated_at = $16
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.CategoryID,
		activity.Title,
		activity.Description,
		activity.Price,
		activity.ImageURL,
		activity.DurationMinutes,
		activity.MeetingPoint,
		activity.Requirements,
		activity.MaxParticipants,
		activity.Type,
		activity.ActiveDays,
		activity.FixedStartTime,
		activity.PricePerParticipant,
		activity.MaxParticipantsPerDay,
		activity.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update activity",
			zap.Error(err),
			zap.String("activity_id", activity.ID.String()),
		)
		return fmt.Errorf("update activity %s: %w", activity.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("activity %s not found", activity.ID.String())
	}

	return nil
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM activities WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete activity",
			zap.Error(err),
			zap.String("activity_id", id.String()),
		)
		return fmt.Errorf("delete activity %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("activity %s not found", id.String())
	}

	return nil
}

func (r *activityRepository) DetachCategory(ctx context.Context, categoryID uuid.UUID) error {
	query := `UPDATE activities SET category_id = NULL, updated_at = NOW() WHERE category_id = $1`

	_, err := r.db.Exec(ctx, query, categoryID)
	if err != nil {
		r.log.Error("Failed to detach activities from category",
			zap.Error(err),
			zap.String("category_id", categoryID.String()),
		)
		return fmt.Errorf("detach activities from category %s: %w", categoryID.String(), err)
	}

	return nil
}
