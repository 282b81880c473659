package repository

import (
	"context"
	"fmt"

	"fastlane-booking/internal/data/entity"
	"fastlane-booking/pkg/database"

	"go.uber.org/zap"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
}

type leadRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLeadRepository(db database.PgxIface, log *zap.Logger) LeadRepository {
	return &leadRepository{
		db:  db,
		log: log.With(zap.String("repository", "lead")),
	}
}

func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, business_name, contact_email, business_type, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		lead.ID,
		lead.BusinessName,
		lead.ContactEmail,
		lead.BusinessType,
		lead.Message,
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create lead",
			zap.Error(err),
			zap.String("business_name", lead.BusinessName),
		)
		return fmt.Errorf("create lead %s: %w", lead.BusinessName, err)
	}

	return nil
}
