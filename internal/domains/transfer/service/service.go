package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/transfer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/occupancy/engine"
	"frontdesk/internal/domains/store/repository"
	"frontdesk/internal/domains/transfer/model/dto"
	"frontdesk/shared/constant"
	"frontdesk/shared/events"
	"frontdesk/shared/lock"

	"github.com/rs/zerolog/log"
)

type Transfer interface {
	Transfer(ctx context.Context, req dto.TransferRequest, today time.Time) (dto.TransferResponse, error)
}

type serviceImpl struct {
	store  repository.Store
	plan   engine.FloorPlan
	locker lock.Locker
	events events.Publisher
	policy engine.FuturePolicy
	otel   otel.Otel
}

func New(store repository.Store, plan engine.FloorPlan, locker lock.Locker, publisher events.Publisher, cfg *config.Config, otel otel.Otel) Transfer {
	policy := engine.FuturePolicy(cfg.Hotel.TransferFuturePolicy)

	switch policy {
	case engine.FuturePolicyIgnore, engine.FuturePolicyWarn, engine.FuturePolicyReject:
	default:
		log.Warn().Str("policy", string(policy)).Msg("Unknown transfer future policy, using warn")

		policy = engine.FuturePolicyWarn
	}

	return &serviceImpl{
		store:  store,
		plan:   plan,
		locker: locker,
		events: publisher,
		policy: policy,
		otel:   otel,
	}
}

// Transfer moves the active party of the origin room, and its charges, to the destination in one write.
func (s *serviceImpl) Transfer(ctx context.Context, req dto.TransferRequest, today time.Time) (res dto.TransferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transfer")
	defer scope.End()
	defer scope.TraceIfError(err)

	origin, destination, err := req.Rooms()
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	transfer := engine.TransferRequest{
		Origin:      origin,
		Destination: destination,
		Reason:      req.Reason,
		Policy:      s.policy,
	}

	scope.SetAttributes(map[string]any{
		"origin":      origin,
		"destination": destination,
	})

	err = s.locker.WithLock(ctx, constant.LockKeyStoreWrite, func(ctx context.Context) error {
		stays, err := s.store.ReadStays(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to read stays")

			return fmt.Errorf("failed to read stays: %w", err)
		}

		consumptions, err := s.store.ReadConsumptions(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to read consumptions")

			return fmt.Errorf("failed to read consumptions: %w", err)
		}

		plan, err := engine.PlanTransfer(s.plan, stays, consumptions, transfer, today)
		if err != nil {
			log.Info().Err(err).Int("origin", origin).Int("destination", destination).Msg("transfer rejected")

			return err // nolint:wrapcheck
		}

		if err := s.store.ReplaceAll(ctx, plan.Stays, plan.Consumptions); err != nil {
			log.Error().Err(err).Msg("failed to store transfer")

			return fmt.Errorf("failed to store transfer: %w", err)
		}

		res.FromPlan(transfer, plan)

		return nil
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if res.Warning != "" {
		log.Warn().Int("room", destination).Msg(res.Warning)
	}

	s.events.Publish(ctx, events.KeyStayTransferred, events.StayTransferred{
		Origin:       origin,
		Destination:  destination,
		OccupantName: res.OccupantName,
		Moved:        res.Moved,
		Relocated:    res.RelocatedCharges,
		Reason:       req.Reason,
	})

	return res, nil
}
