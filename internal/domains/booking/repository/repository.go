package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"garage/infras/otel"
	"garage/infras/postgres"
	"garage/internal/domains/booking/model"
	hModel "garage/internal/domains/history/model"
	"garage/shared"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	"garage/shared/failure"
	"garage/shared/logger"
	gRepo "garage/shared/repository"
)

type Booking interface {
	CreateWithHistory(ctx context.Context, booking model.Booking, entry hModel.HistoryEntry, bufferMinutes int) error
	RescheduleWithHistory(ctx context.Context, booking model.Booking, fields map[string]any, entry hModel.HistoryEntry, bufferMinutes int) error
	UpdateWithHistory(ctx context.Context, booking model.Booking, fields map[string]any, entry hModel.HistoryEntry) error
	FindByID(ctx context.Context, id string) (model.Booking, error)
	FindActiveByDate(ctx context.Context, date time.Time, excludeID string) ([]model.Booking, error)
	FindCancellationsSince(ctx context.Context, customerID string, since time.Time) ([]model.CancellationEvent, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	historyRepo gRepo.Repository[hModel.HistoryEntry]
	db          *postgres.Connection
	otel        otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository:  gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		historyRepo: gRepo.NewRepository[hModel.HistoryEntry](hModel.EntityName, hModel.TableName, hModel.FieldID, db, otel),
		db:          db,
		otel:        otel,
	}
}

// CreateWithHistory persists the booking and its audit entry atomically.
// All writers for the same date serialize on a per-date advisory lock, and
// the buffered overlap probe runs inside that lock, so at most one of two
// competing requests for an overlapping interval can commit.
func (repo *repositoryImpl) CreateWithHistory(ctx context.Context, booking model.Booking, entry hModel.HistoryEntry, bufferMinutes int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateWithHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := repo.lockDate(ctx, tx, booking.BookingDate); err != nil {
			return err
		}

		conflict, err := repo.probeConflict(ctx, tx, booking, constant.Empty, bufferMinutes)
		if err != nil {
			return err
		}

		if conflict {
			return failure.ErrSlotConflict //nolint:wrapcheck
		}

		if err := repo.InsertTx(ctx, tx, booking); err != nil {
			return asSlotConflict(err)
		}

		return repo.historyRepo.InsertTx(ctx, tx, entry)
	})
}

// RescheduleWithHistory applies a field update that moves the booking in
// time, re-validating the target interval under the same per-date lock and
// excluding the booking's own prior reservation from the probe.
func (repo *repositoryImpl) RescheduleWithHistory(ctx context.Context, booking model.Booking, fields map[string]any, entry hModel.HistoryEntry, bufferMinutes int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.RescheduleWithHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := repo.lockDate(ctx, tx, booking.BookingDate); err != nil {
			return err
		}

		conflict, err := repo.probeConflict(ctx, tx, booking, booking.ID, bufferMinutes)
		if err != nil {
			return err
		}

		if conflict {
			return failure.ErrSlotConflict //nolint:wrapcheck
		}

		filter := filterByID(booking.ID)
		if err := repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return asSlotConflict(err)
		}

		return repo.historyRepo.InsertTx(ctx, tx, entry)
	})
}

// UpdateWithHistory applies a field update that leaves the slot untouched,
// so no probe is needed. The history entry still lands in the same
// transaction to keep the audit trail ordered with the mutation it records.
func (repo *repositoryImpl) UpdateWithHistory(ctx context.Context, booking model.Booking, fields map[string]any, entry hModel.HistoryEntry) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateWithHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.inTx(ctx, func(tx *sqlx.Tx) error {
		filter := filterByID(booking.ID)
		if err := repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return err //nolint:wrapcheck
		}

		return repo.historyRepo.InsertTx(ctx, tx, entry)
	})
}

func (repo *repositoryImpl) FindByID(ctx context.Context, id string) (model.Booking, error) {
	return repo.Get(ctx, filterByID(id)) //nolint:wrapcheck
}

// FindActiveByDate returns every non-cancelled booking on the given day,
// ordered by start time, optionally excluding one booking id.
func (repo *repositoryImpl) FindActiveByDate(ctx context.Context, date time.Time, excludeID string) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindActiveByDate")
	defer scope.End()

	query := fmt.Sprintf(`SELECT * FROM %s
		WHERE booking_date = $1 AND status <> $2 AND id <> $3
		ORDER BY start_time ASC`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.Booking

	err := repo.db.Read.SelectContext(ctx, &bookings, query, dateOnly(date), model.StatusCancelled, excludeID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find bookings by date: %w", err)
	}

	return bookings, nil
}

// FindCancellationsSince returns the customer's cancellation events on or
// after the given instant, newest last.
func (repo *repositoryImpl) FindCancellationsSince(ctx context.Context, customerID string, since time.Time) ([]model.CancellationEvent, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindCancellationsSince")
	defer scope.End()

	query := fmt.Sprintf(`SELECT id, customer_id, cancelled_at, COALESCE(cancellation_fee, 0) AS cancellation_fee
		FROM %s
		WHERE customer_id = $1 AND status = $2 AND cancelled_at >= $3
		ORDER BY cancelled_at ASC`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var events []model.CancellationEvent

	err := repo.db.Read.SelectContext(ctx, &events, query, customerID, model.StatusCancelled, since)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find cancellations: %w", err)
	}

	return events, nil
}

func (repo *repositoryImpl) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to roll back transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// lockDate serializes writers per calendar day. The lock is released when
// the surrounding transaction commits or rolls back.
func (repo *repositoryImpl) lockDate(ctx context.Context, tx *sqlx.Tx, date time.Time) error {
	_, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", "bookings:"+dateOnly(date))
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to acquire booking date lock: %w", err)
	}

	return nil
}

// probeConflict runs the buffered overlap predicate against every
// non-cancelled booking on the candidate's day. The buffer expands the
// existing bookings only; the candidate interval is compared raw.
func (repo *repositoryImpl) probeConflict(ctx context.Context, tx *sqlx.Tx, booking model.Booking, excludeID string, bufferMinutes int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(
		SELECT 1 FROM %s
		WHERE booking_date = $1
			AND status <> $2
			AND id <> $3
			AND $4 < end_time + ($6 * interval '1 minute')
			AND $5 > start_time - ($6 * interval '1 minute')
	)`, model.TableName)

	var conflict bool

	err := tx.GetContext(ctx, &conflict, query,
		dateOnly(booking.BookingDate),
		model.StatusCancelled,
		excludeID,
		booking.StartTime,
		booking.EndTime,
		bufferMinutes,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to probe for slot conflicts: %w", err)
	}

	return conflict, nil
}

// asSlotConflict converts storage-level overlap rejections (the gist
// exclusion constraint, or a duplicate conflict signature) into the typed
// conflict failure; anything else passes through unchanged.
func asSlotConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		if code == constant.PqErrorCodeExclusionViolation || code == constant.PqErrorCodeUniqueViolation {
			return failure.ErrSlotConflict //nolint:wrapcheck
		}
	}

	return err
}

func filterByID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func dateOnly(date time.Time) string {
	return date.Format(constant.DateOnlyFormat)
}
