package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/booking_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/occupancy/engine"
	"frontdesk/internal/domains/store/repository"
	"frontdesk/shared/constant"
	"frontdesk/shared/events"
	"frontdesk/shared/failure"
	"frontdesk/shared/lock"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const minNameLength = 2

type Booking interface {
	WalkIn(ctx context.Context, req dto.WalkInRequest, today time.Time) (dto.StayResponse, error)
}

type serviceImpl struct {
	store  repository.Store
	plan   engine.FloorPlan
	locker lock.Locker
	events events.Publisher
	cfg    *config.Config
	otel   otel.Otel
}

func New(store repository.Store, plan engine.FloorPlan, locker lock.Locker, publisher events.Publisher, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		store:  store,
		plan:   plan,
		locker: locker,
		events: publisher,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *serviceImpl) validate(req dto.WalkInRequest) error {
	if req.PartySize < 1 || req.PartySize > s.cfg.Hotel.MaxPartySize {
		return failure.Validation("party size must be between 1 and %d", s.cfg.Hotel.MaxPartySize)
	}

	if len([]rune(req.Name)) < minNameLength {
		return failure.Validation("name must have at least %d characters", minNameLength)
	}

	if req.Nights < 1 {
		return failure.Validation("nights must be at least 1")
	}

	if !s.plan.Contains(req.Room) {
		return failure.Validation("room %d is not part of the floor plan", req.Room)
	}

	return nil
}

// WalkIn books req.Room from today for req.Nights nights.
func (s *serviceImpl) WalkIn(ctx context.Context, req dto.WalkInRequest, today time.Time) (res dto.StayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WalkIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	req = req.WithDefaults(s.cfg)

	if err = s.validate(req); err != nil {
		return res, err
	}

	scope.SetAttribute("room", req.Room)

	checkIn := timezone.DateOf(today)
	checkOut := checkIn.AddDate(0, 0, req.Nights)

	err = s.locker.WithLock(ctx, constant.LockKeyStoreWrite, func(ctx context.Context) error {
		stays, err := s.store.ReadStays(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to read stays")

			return fmt.Errorf("failed to read stays: %w", err)
		}

		if err := engine.ValidateNewStay(s.plan, stays, req.Room, checkIn, checkOut, checkIn); err != nil {
			log.Info().Err(err).Int("room", req.Room).Msg("walk-in rejected")

			return err // nolint:wrapcheck
		}

		record := req.ToModel(checkIn, checkOut)

		if err := s.store.ReplaceStays(ctx, append(stays, record)); err != nil {
			log.Error().Err(err).Msg("failed to store walk-in")

			return fmt.Errorf("failed to store walk-in: %w", err)
		}

		res.FromModel(record)

		return nil
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	s.events.Publish(ctx, events.KeyStayBooked, events.StayBooked{
		StayID:    res.ID,
		Room:      res.Room,
		Name:      res.Name,
		PartySize: res.PartySize,
		CheckIn:   res.CheckIn,
		CheckOut:  res.CheckOut,
		GroupKey:  res.GroupKey,
	})

	return res, nil
}
