package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fastlane-booking/internal/data/entity"
	"fastlane-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicateSlot is returned when the database rejects a slot claim because
// another booking already holds the same (vendor, activity, date, time). This
// is the authoritative conflict signal; the pre-flight read in the service is
// advisory only.
var ErrDuplicateSlot = errors.New("slot already claimed")

type BookingRepository interface {
	// Create inserts the booking and claims one slot row per line-item
	// activity inside a single transaction. A unique violation on any claim
	// aborts the whole insert and returns ErrDuplicateSlot.
	Create(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// FindByVendorID lists newest first. A nil fulfilled means no filter.
	FindByVendorID(ctx context.Context, vendorID uuid.UUID, fulfilled *bool, limit, offset int) ([]*entity.Booking, error)
	CountByVendorID(ctx context.Context, vendorID uuid.UUID, fulfilled *bool) (int64, error)

	// Business queries
	FindByVendorSlot(ctx context.Context, vendorID uuid.UUID, date time.Time, bookingTime string) ([]*entity.Booking, error)
	CountByVendorAndEmail(ctx context.Context, vendorID uuid.UUID, email string) (int64, error)
	SetFulfilled(ctx context.Context, id uuid.UUID, fulfilled bool) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, vendor_id, booking_number, booking_details, total_price,
	booking_date, booking_time, customer_name, customer_email, customer_whatsapp,
	comments, participant_count, is_paid, is_fulfilled, created_at`

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertBooking := `
		INSERT INTO bookings (id, vendor_id, booking_number, booking_details, total_price,
			booking_date, booking_time, customer_name, customer_email, customer_whatsapp,
			comments, participant_count, is_paid, is_fulfilled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err = tx.Exec(ctx, insertBooking,
		booking.ID,
		booking.VendorID,
		booking.BookingNumber,
		booking.Details,
		booking.TotalPrice,
		booking.BookingDate,
		booking.BookingTime,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerWhatsApp,
		booking.Comments,
		booking.ParticipantCount,
		booking.IsPaid,
		booking.IsFulfilled,
		booking.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_number", booking.BookingNumber),
		)
		return fmt.Errorf("insert booking %s: %w", booking.BookingNumber, err)
	}

	// Claim one slot per line-item activity. The UNIQUE constraint on
	// (vendor_id, activity_id, booking_date, booking_time) is what actually
	// enforces the no-double-booking rule.
	claimSlot := `
		INSERT INTO booking_slots (booking_id, vendor_id, activity_id, booking_date, booking_time)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, detail := range booking.Details {
		_, err = tx.Exec(ctx, claimSlot,
			booking.ID,
			booking.VendorID,
			detail.ActivityID,
			booking.BookingDate,
			booking.BookingTime,
		)
		if err != nil {
			if isUniqueViolation(err) {
				r.log.Warn("Slot already claimed",
					zap.String("vendor_id", booking.VendorID.String()),
					zap.String("activity_id", detail.ActivityID.String()),
					zap.String("booking_date", booking.BookingDate.Format("2006-01-02")),
					zap.String("booking_time", booking.BookingTime),
				)
				return fmt.Errorf("claim slot for activity %s: %w", detail.ActivityID.String(), ErrDuplicateSlot)
			}
			r.log.Error("Failed to claim slot",
				zap.Error(err),
				zap.String("activity_id", detail.ActivityID.String()),
			)
			return fmt.Errorf("claim slot for activity %s: %w", detail.ActivityID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction",
			zap.Error(err),
			zap.String("booking_number", booking.BookingNumber),
		)
		return fmt.Errorf("commit booking %s: %w", booking.BookingNumber, err)
	}

	return nil
}

func (r *bookingRepository) scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.VendorID,
		&booking.BookingNumber,
		&booking.Details,
		&booking.TotalPrice,
		&booking.BookingDate,
		&booking.BookingTime,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerWhatsApp,
		&booking.Comments,
		&booking.ParticipantCount,
		&booking.IsPaid,
		&booking.IsFulfilled,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByVendorID(ctx context.Context, vendorID uuid.UUID, fulfilled *bool, limit, offset int) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE vendor_id = $1 AND ($2::boolean IS NULL OR is_fulfilled = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`, bookingColumns)

	rows, err := r.db.Query(ctx, query, vendorID, fulfilled, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by vendor ID",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by vendor ID %s: %w", vendorID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByVendorID(ctx context.Context, vendorID uuid.UUID, fulfilled *bool) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE vendor_id = $1 AND ($2::boolean IS NULL OR is_fulfilled = $2)`

	var count int64
	err := r.db.QueryRow(ctx, query, vendorID, fulfilled).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by vendor ID",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
		)
		return 0, fmt.Errorf("count bookings by vendor ID %s: %w", vendorID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindByVendorSlot(ctx context.Context, vendorID uuid.UUID, date time.Time, bookingTime string) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE vendor_id = $1 AND booking_date = $2 AND booking_time = $3
	`, bookingColumns)

	rows, err := r.db.Query(ctx, query, vendorID, date, bookingTime)
	if err != nil {
		r.log.Error("Failed to find bookings by slot",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
			zap.String("booking_date", date.Format("2006-01-02")),
			zap.String("booking_time", bookingTime),
		)
		return nil, fmt.Errorf("find bookings by slot: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByVendorAndEmail(ctx context.Context, vendorID uuid.UUID, email string) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE vendor_id = $1 AND customer_email = $2`

	var count int64
	err := r.db.QueryRow(ctx, query, vendorID, email).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by customer email",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
		)
		return 0, fmt.Errorf("count bookings for customer: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) SetFulfilled(ctx context.Context, id uuid.UUID, fulfilled bool) error {
	query := `UPDATE bookings SET is_fulfilled = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, fulfilled)
	if err != nil {
		r.log.Error("Failed to update fulfilled flag",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.Bool("fulfilled", fulfilled),
		)
		return fmt.Errorf("update booking %s fulfilled flag: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}
