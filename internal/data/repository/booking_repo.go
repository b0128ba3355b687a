package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"room-booking/internal/data/entity"
	"room-booking/internal/scheduler"
	"room-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	// Business queries feeding the scheduler: only pending and approved
	// bookings block a room or count toward quota.
	FindActiveByRoomAndDate(ctx context.Context, roomID uuid.UUID, date string) ([]*entity.Booking, error)
	FindActiveByDate(ctx context.Context, date string) ([]*entity.Booking, error)
	FindActiveByUserBetween(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]*entity.Booking, error)
	CompleteExpired(ctx context.Context, currentDate, currentTime string) (int64, error)
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

const bookingColumns = `id, room_id, user_id, date, start_time, end_time, time_slots, purpose, status, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, room_id, user_id, date, start_time, end_time, time_slots, purpose, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	slots, err := json.Marshal(booking.TimeSlots)
	if err != nil {
		return fmt.Errorf("marshal time slots: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		booking.ID,
		booking.RoomID,
		booking.UserID,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		slots,
		booking.Purpose,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("room_id", booking.RoomID.String()),
			zap.String("user_id", booking.UserID.String()),
			zap.String("date", booking.Date),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	var slots []byte

	err := row.Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.UserID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&slots,
		&booking.Purpose,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(slots) > 0 {
		if err := json.Unmarshal(slots, &booking.TimeSlots); err != nil {
			return nil, fmt.Errorf("unmarshal time slots: %w", err)
		}
	}
	if booking.TimeSlots == nil {
		booking.TimeSlots = []scheduler.TimeRange{}
	}

	return &booking, nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
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

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

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

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY date DESC, start_time DESC
	`

	bookings, err := r.queryBookings(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY date DESC, start_time DESC
	`

	bookings, err := r.queryBookings(ctx, query)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindActiveByRoomAndDate(ctx context.Context, roomID uuid.UUID, date string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_id = $1 AND date = $2 AND status IN ('pending', 'approved')
		ORDER BY start_time
	`

	bookings, err := r.queryBookings(ctx, query, roomID, date)
	if err != nil {
		r.log.Error("Failed to find active bookings for room",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("find active bookings for room %s on %s: %w", roomID.String(), date, err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindActiveByDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE date = $1 AND status IN ('pending', 'approved')
		ORDER BY start_time
	`

	bookings, err := r.queryBookings(ctx, query, date)
	if err != nil {
		r.log.Error("Failed to find active bookings by date",
			zap.Error(err),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("find active bookings on %s: %w", date, err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindActiveByUserBetween(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1 AND date >= $2 AND date <= $3 AND status IN ('pending', 'approved')
		ORDER BY date, start_time
	`

	bookings, err := r.queryBookings(ctx, query, userID, fromDate, toDate)
	if err != nil {
		r.log.Error("Failed to find active bookings for user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("from", fromDate),
			zap.String("to", toDate),
		)
		return nil, fmt.Errorf("find active bookings for user %s: %w", userID.String(), err)
	}

	return bookings, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) CompleteExpired(ctx context.Context, currentDate, currentTime string) (int64, error) {
	query := `
		UPDATE bookings
		SET status = 'completed', updated_at = NOW()
		WHERE status = 'approved' AND (date < $1 OR (date = $1 AND end_time <= $2))
	`

	result, err := r.db.Exec(ctx, query, currentDate, currentTime)
	if err != nil {
		r.log.Error("Failed to complete expired bookings",
			zap.Error(err),
			zap.String("date", currentDate),
			zap.String("time", currentTime),
		)
		return 0, fmt.Errorf("complete expired bookings: %w", err)
	}

	return result.RowsAffected(), nil
}
