package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"garage/infras/otel"
	"garage/infras/postgres"
	"garage/internal/domains/schedule/model"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	"garage/shared/logger"
	gRepo "garage/shared/repository"
)

type BusinessHours interface {
	Upsert(ctx context.Context, model model.BusinessHours) error
	GetByWeekday(ctx context.Context, weekday int) (model.BusinessHours, bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BusinessHours, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.BusinessHours]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) BusinessHours {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BusinessHours](model.EntityName, model.TableName, model.FieldWeekday, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert writes the configuration for one weekday, replacing whatever was
// there before.
func (repo *repositoryImpl) Upsert(ctx context.Context, hours model.BusinessHours) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".business_hours.Upsert")
	defer scope.End()

	query := fmt.Sprintf(`INSERT INTO %s
		(weekday, closed, morning_open, morning_close, afternoon_open, afternoon_close, created_at, modified_at, created_by, modified_by)
		VALUES (:weekday, :closed, :morning_open, :morning_close, :afternoon_open, :afternoon_close, :created_at, :modified_at, :created_by, :modified_by)
		ON CONFLICT (weekday) DO UPDATE SET
			closed = EXCLUDED.closed,
			morning_open = EXCLUDED.morning_open,
			morning_close = EXCLUDED.morning_close,
			afternoon_open = EXCLUDED.afternoon_open,
			afternoon_close = EXCLUDED.afternoon_close,
			modified_at = EXCLUDED.modified_at,
			modified_by = EXCLUDED.modified_by`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, hours)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert business hours: %w", err)
	}

	return nil
}

// GetByWeekday returns the configuration for a weekday and whether one is
// configured at all, so callers can tell "explicitly closed" apart from
// "not configured".
func (repo *repositoryImpl) GetByWeekday(ctx context.Context, weekday int) (model.BusinessHours, bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".business_hours.GetByWeekday")
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s WHERE weekday = $1", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var hours model.BusinessHours

	err := repo.db.Read.GetContext(ctx, &hours, query, weekday)
	if errors.Is(err, sql.ErrNoRows) {
		return hours, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return hours, false, fmt.Errorf("failed to get business hours: %w", err)
	}

	return hours, true, nil
}
