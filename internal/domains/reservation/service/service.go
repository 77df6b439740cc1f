package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/reservation_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/occupancy/engine"
	"frontdesk/internal/domains/reservation/model/dto"
	stay "frontdesk/internal/domains/stay/model"
	"frontdesk/internal/domains/store/repository"
	"frontdesk/internal/domains/store/snapshot"
	"frontdesk/shared/constant"
	"frontdesk/shared/events"
	"frontdesk/shared/lock"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Reservation groups the bulk maintenance operations on stored reservations.
type Reservation interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
	PurgeByCheckIn(ctx context.Context, checkIn time.Time) (dto.PurgeResponse, error)
	Import(ctx context.Context, format dto.Format, src io.Reader) (dto.ImportResponse, error)
}

type serviceImpl struct {
	store     repository.Store
	snapshots snapshot.Snapshotter
	locker    lock.Locker
	events    events.Publisher
	cfg       *config.Config
	otel      otel.Otel
}

func New(store repository.Store, snapshots snapshot.Snapshotter, locker lock.Locker, publisher events.Publisher, cfg *config.Config, otel otel.Otel) Reservation {
	return &serviceImpl{
		store:     store,
		snapshots: snapshots,
		locker:    locker,
		events:    publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	stays, err := s.store.ReadStays(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read stays")

		return res, fmt.Errorf("failed to read stays: %w", err)
	}

	res.Total = len(stays)
	res.Dates = summarize(stays)

	return res, nil
}

// summarize counts records and distinct rooms per stored check-in value, in date order.
func summarize(stays []stay.StayRecord) []dto.SummaryLine {
	records := map[string]int{}
	rooms := map[string]map[int]struct{}{}

	for _, record := range stays {
		records[record.CheckIn]++

		if rooms[record.CheckIn] == nil {
			rooms[record.CheckIn] = map[int]struct{}{}
		}

		rooms[record.CheckIn][record.Room] = struct{}{}
	}

	lines := make([]dto.SummaryLine, 0, len(records))
	for checkIn, count := range records {
		lines = append(lines, dto.SummaryLine{CheckIn: checkIn, Records: count, Rooms: len(rooms[checkIn])})
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].CheckIn < lines[j].CheckIn })

	return lines
}

// snapshot stores the current stay set before a bulk change. A failed upload aborts the change.
func (s *serviceImpl) snapshot(ctx context.Context, stays []stay.StayRecord) (string, error) {
	location, err := s.snapshots.Stays(ctx, stays, timezone.Now())
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to snapshot stays: %w", err)
	}

	return location, nil
}

func (s *serviceImpl) PurgeByCheckIn(ctx context.Context, checkIn time.Time) (res dto.PurgeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PurgeByCheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.CheckIn = engine.FormatDate(checkIn)
	scope.SetAttribute("check_in", res.CheckIn)

	err = s.locker.WithLock(ctx, constant.LockKeyStoreWrite, func(ctx context.Context) error {
		stays, err := s.store.ReadStays(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to read stays")

			return fmt.Errorf("failed to read stays: %w", err)
		}

		res.Before = len(stays)

		kept := make([]stay.StayRecord, 0, len(stays))
		for _, record := range stays {
			if !engine.SameDay(record.CheckIn, checkIn) {
				kept = append(kept, record)
			}
		}

		res.Removed = len(stays) - len(kept)
		if res.Removed == 0 {
			return nil
		}

		if res.Snapshot, err = s.snapshot(ctx, stays); err != nil {
			return err
		}

		if err := s.store.ReplaceStays(ctx, kept); err != nil {
			log.Error().Err(err).Msg("failed to store purged stays")

			return fmt.Errorf("failed to store purged stays: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if res.Removed == 0 {
		log.Info().Str("check_in", res.CheckIn).Msg("no reservations to purge")

		return res, nil
	}

	log.Info().Str("check_in", res.CheckIn).Int("removed", res.Removed).Msg("reservations purged")

	s.events.Publish(ctx, events.KeyReservationsPurged, events.ReservationsPurged{
		CheckIn:  res.CheckIn,
		Removed:  res.Removed,
		Snapshot: res.Snapshot,
	})

	return res, nil
}

func (s *serviceImpl) Import(ctx context.Context, format dto.Format, src io.Reader) (res dto.ImportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Import")
	defer scope.End()
	defer scope.TraceIfError(err)

	records, err := dto.Decode(format, src, s.cfg.Hotel.ImportDateLayout)
	if err != nil {
		log.Info().Err(err).Msg("reservation file rejected")

		return res, err // nolint:wrapcheck
	}

	res.Added = len(records)
	if res.Added == 0 {
		return res, nil
	}

	err = s.locker.WithLock(ctx, constant.LockKeyStoreWrite, func(ctx context.Context) error {
		stays, err := s.store.ReadStays(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to read stays")

			return fmt.Errorf("failed to read stays: %w", err)
		}

		res.Before = len(stays)

		if res.Snapshot, err = s.snapshot(ctx, stays); err != nil {
			return err
		}

		if err := s.store.ReplaceStays(ctx, append(stays, records...)); err != nil {
			log.Error().Err(err).Msg("failed to store imported stays")

			return fmt.Errorf("failed to store imported stays: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	log.Info().Int("added", res.Added).Int("before", res.Before).Msg("reservations imported")

	s.events.Publish(ctx, events.KeyReservationsImported, events.ReservationsImported{
		Added:    res.Added,
		Snapshot: res.Snapshot,
	})

	return res, nil
}
