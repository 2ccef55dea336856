package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/internal/domains/booking/model"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/logger"
	gRepo "inn/shared/repository"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Workflow errors. Services map these onto HTTP-coded failures.
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomUnavailable = errors.New("room unavailable")
	ErrDateConflict    = errors.New("room already booked for that date")
	ErrBookingNotFound = errors.New("booking not found")
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Reserve(ctx context.Context, booking model.Booking) error
	Release(ctx context.Context, id string) (model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Reserve inserts a booking and decrements the room's availability in one
// transaction. The room row is locked first so concurrent reservations for the
// same room serialize; the unique index on (room_id, booking_date) backstops
// the duplicate check.
func (repo *repositoryImpl) Reserve(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.BeginTx(ctx)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin reservation transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback reservation transaction")
			}
		}
	}()

	var availability int

	err = tx.GetContext(ctx, &availability,
		"SELECT availability FROM rooms WHERE id = $1 FOR UPDATE", booking.RoomID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRoomNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock room row: %w", err)
	}

	if availability <= 0 {
		return ErrRoomUnavailable
	}

	var booked bool

	err = tx.GetContext(ctx, &booked,
		"SELECT EXISTS(SELECT 1 FROM room_bookings WHERE room_id = $1 AND booking_date = $2)",
		booking.RoomID, booking.BookingDate)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to check existing booking: %w", err)
	}

	if booked {
		return ErrDateConflict
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return ErrDateConflict
		}

		return err
	}

	result, err := tx.ExecContext(ctx,
		"UPDATE rooms SET availability = availability - 1 WHERE id = $1 AND availability > 0",
		booking.RoomID)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to decrement room availability: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to read decrement result: %w", err)
	}

	if affected == 0 {
		return ErrRoomUnavailable
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit reservation: %w", err)
	}

	return nil
}

// Release removes a booking and credits the room's availability back in the
// same transaction, so a crash can never leave the counter over-credited.
// Returns the removed booking.
func (repo *repositoryImpl) Release(ctx context.Context, id string) (booking model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Release")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.BeginTx(ctx)
	if err != nil {
		logger.ErrorWithStack(err)

		return booking, fmt.Errorf("failed to begin release transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback release transaction")
			}
		}
	}()

	err = tx.GetContext(ctx, &booking,
		"SELECT id, room_id, booking_date, email, details, created_at, created_by, modified_at, modified_by FROM room_bookings WHERE id = $1 FOR UPDATE", id)
	if errors.Is(err, sql.ErrNoRows) {
		return booking, ErrBookingNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return booking, fmt.Errorf("failed to lock booking row: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE rooms SET availability = availability + 1 WHERE id = $1", booking.RoomID)
	if err != nil {
		logger.ErrorWithStack(err)

		return booking, fmt.Errorf("failed to restore room availability: %w", err)
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM room_bookings WHERE id = $1", booking.ID)
	if err != nil {
		logger.ErrorWithStack(err)

		return booking, fmt.Errorf("failed to delete booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return booking, fmt.Errorf("failed to commit release: %w", err)
	}

	return booking, nil
}
