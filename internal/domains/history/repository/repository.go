package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"garage/infras/otel"
	"garage/infras/postgres"
	"garage/internal/domains/history/model"
	"garage/shared/constant"
	"garage/shared/logger"
	gRepo "garage/shared/repository"
)

type History interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.HistoryEntry) error
	ListByBooking(ctx context.Context, bookingID string) ([]model.HistoryEntry, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.HistoryEntry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) History {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.HistoryEntry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListByBooking returns the audit trail for a booking in acceptance order.
func (repo *repositoryImpl) ListByBooking(ctx context.Context, bookingID string) ([]model.HistoryEntry, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".history.ListByBooking")
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s WHERE booking_id = $1 ORDER BY occurred_at ASC, id ASC", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var entries []model.HistoryEntry

	err := repo.db.Read.SelectContext(ctx, &entries, query, bookingID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list booking history: %w", err)
	}

	return entries, nil
}
