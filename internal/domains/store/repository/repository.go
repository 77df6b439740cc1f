package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/store_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	consumption "frontdesk/internal/domains/consumption/model"
	stay "frontdesk/internal/domains/stay/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Store supplies the full record sets and accepts full replacements. It holds no conflict logic.
type Store interface {
	ReadStays(ctx context.Context) ([]stay.StayRecord, error)
	ReplaceStays(ctx context.Context, stays []stay.StayRecord) error
	ReadConsumptions(ctx context.Context) ([]consumption.Consumption, error)
	ReplaceConsumptions(ctx context.Context, consumptions []consumption.Consumption) error
	ReplaceAll(ctx context.Context, stays []stay.StayRecord, consumptions []consumption.Consumption) error
}

type sqlStore struct {
	db           *repository.Connection
	otel         otel.Otel
	stays        repository.Repository[stay.StayRecord]
	consumptions repository.Repository[consumption.Consumption]
}

// New returns the SQL store for the configured driver, or the memory store when there is no connection.
func New(cfg *config.Config, db *repository.Connection, otel otel.Otel) Store {
	if cfg.Store.Driver == config.StoreDriverMemory || db == nil {
		return NewMemory(nil, nil)
	}

	return NewSQL(db, otel)
}

func NewSQL(db *repository.Connection, otel otel.Otel) Store {
	return &sqlStore{
		db:           db,
		otel:         otel,
		stays:        repository.NewRepository[stay.StayRecord](stay.EntitasName, stay.TableName, stay.FieldPosition, db, otel),
		consumptions: repository.NewRepository[consumption.Consumption](consumption.EntitasName, consumption.TableName, stay.FieldPosition, db, otel),
	}
}

func (s *sqlStore) ReadStays(ctx context.Context) ([]stay.StayRecord, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".store.ReadStays")
	defer scope.End()

	stays, err := s.stays.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read stays")

		return nil, failure.StoreUnavailable(err) // nolint:wrapcheck
	}

	return stays, nil
}

func (s *sqlStore) ReplaceStays(ctx context.Context, stays []stay.StayRecord) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".store.ReplaceStays")
	defer scope.End()

	if err := s.stays.ReplaceAll(ctx, numberStays(stays)); err != nil {
		log.Error().Err(err).Msg("failed to replace stays")

		return failure.StoreUnavailable(err) // nolint:wrapcheck
	}

	return nil
}

func (s *sqlStore) ReadConsumptions(ctx context.Context) ([]consumption.Consumption, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".store.ReadConsumptions")
	defer scope.End()

	consumptions, err := s.consumptions.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read consumptions")

		return nil, failure.StoreUnavailable(err) // nolint:wrapcheck
	}

	return consumptions, nil
}

func (s *sqlStore) ReplaceConsumptions(ctx context.Context, consumptions []consumption.Consumption) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".store.ReplaceConsumptions")
	defer scope.End()

	if err := s.consumptions.ReplaceAll(ctx, numberConsumptions(consumptions)); err != nil {
		log.Error().Err(err).Msg("failed to replace consumptions")

		return failure.StoreUnavailable(err) // nolint:wrapcheck
	}

	return nil
}

func (s *sqlStore) ReplaceAll(ctx context.Context, stays []stay.StayRecord, consumptions []consumption.Consumption) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".store.ReplaceAll")
	defer scope.End()

	err := repository.WithTx(ctx, s.db, func(sqltx *sqlx.Tx) error {
		if err := s.stays.ReplaceAllTx(ctx, sqltx, numberStays(stays)); err != nil {
			return fmt.Errorf("failed to replace stays: %w", err)
		}

		if err := s.consumptions.ReplaceAllTx(ctx, sqltx, numberConsumptions(consumptions)); err != nil {
			return fmt.Errorf("failed to replace consumptions: %w", err)
		}

		return nil
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to replace store")

		return failure.StoreUnavailable(err) // nolint:wrapcheck
	}

	return nil
}

// numberStays stamps the sequence order so reads return records in written order.
func numberStays(stays []stay.StayRecord) []stay.StayRecord {
	numbered := make([]stay.StayRecord, len(stays))

	for i, record := range stays {
		record.Position = i
		numbered[i] = record
	}

	return numbered
}

func numberConsumptions(consumptions []consumption.Consumption) []consumption.Consumption {
	numbered := make([]consumption.Consumption, len(consumptions))

	for i, record := range consumptions {
		record.Position = i
		numbered[i] = record
	}

	return numbered
}
