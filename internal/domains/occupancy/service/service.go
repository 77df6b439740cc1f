package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/occupancy_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/occupancy/engine"
	"frontdesk/internal/domains/occupancy/model/dto"
	"frontdesk/internal/domains/occupancy/report"
	"frontdesk/internal/domains/store/repository"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Occupancy interface {
	Dashboard(ctx context.Context, today time.Time) (dto.DashboardResponse, error)
	ExportDashboard(ctx context.Context, today time.Time) (fileName string, content []byte, err error)
	AvailableRooms(ctx context.Context, today time.Time, excluding ...int) (dto.AvailableRoomsResponse, error)
	ValidateNewStay(ctx context.Context, room int, checkIn, checkOut, today time.Time) error
	MaxAvailableNights(ctx context.Context, room int, today time.Time) (dto.MaxNightsResponse, error)
	ChargeTotal(ctx context.Context, room int) (dto.ChargesResponse, error)
}

type serviceImpl struct {
	store repository.Store
	plan  engine.FloorPlan
	otel  otel.Otel
}

func New(store repository.Store, plan engine.FloorPlan, otel otel.Otel) Occupancy {
	return &serviceImpl{
		store: store,
		plan:  plan,
		otel:  otel,
	}
}

func (s *serviceImpl) dashboard(ctx context.Context, today time.Time) (engine.Dashboard, error) {
	stays, err := s.store.ReadStays(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read stays")

		return engine.Dashboard{}, fmt.Errorf("failed to read stays: %w", err)
	}

	consumptions, err := s.store.ReadConsumptions(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read consumptions")

		return engine.Dashboard{}, fmt.Errorf("failed to read consumptions: %w", err)
	}

	dashboard := engine.BuildDashboard(s.plan, stays, consumptions, today)

	for _, violation := range dashboard.Violations {
		log.Warn().Int("room", violation.Room).Int("bookings", violation.Bookings).Msg("room held by more than one booking")
	}

	return dashboard, nil
}

func (s *serviceImpl) Dashboard(ctx context.Context, today time.Time) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	dashboard, err := s.dashboard(ctx, today)
	if err != nil {
		return res, err
	}

	scope.SetAttributes(map[string]any{
		"occupied": dashboard.Stats.Occupied,
		"reserved": dashboard.Stats.Reserved,
	})

	res.FromDashboard(dashboard)

	return res, nil
}

func (s *serviceImpl) ExportDashboard(ctx context.Context, today time.Time) (fileName string, content []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportDashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	dashboard, err := s.dashboard(ctx, today)
	if err != nil {
		return "", nil, err
	}

	content, err = report.Dashboard(dashboard)
	if err != nil {
		log.Error().Err(err).Msg("failed to render dashboard export")

		return "", nil, fmt.Errorf("failed to render dashboard export: %w", err)
	}

	return report.FileName(dashboard), content, nil
}

func (s *serviceImpl) AvailableRooms(ctx context.Context, today time.Time, excluding ...int) (res dto.AvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	stays, err := s.store.ReadStays(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read stays")

		return res, fmt.Errorf("failed to read stays: %w", err)
	}

	res.Date = engine.FormatDate(today)
	res.Rooms = engine.AvailableRooms(s.plan, engine.Resolve(stays, today), excluding...)

	return res, nil
}

func (s *serviceImpl) ValidateNewStay(ctx context.Context, room int, checkIn, checkOut, today time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateNewStay")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("room", room)

	stays, err := s.store.ReadStays(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read stays")

		return fmt.Errorf("failed to read stays: %w", err)
	}

	return engine.ValidateNewStay(s.plan, stays, room, checkIn, checkOut, today) // nolint:wrapcheck
}

func (s *serviceImpl) MaxAvailableNights(ctx context.Context, room int, today time.Time) (res dto.MaxNightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MaxAvailableNights")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.plan.Contains(room) {
		return res, failure.Validation("room %d is not part of the floor plan", room) // nolint:wrapcheck
	}

	stays, err := s.store.ReadStays(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read stays")

		return res, fmt.Errorf("failed to read stays: %w", err)
	}

	res.Room = room
	res.Date = engine.FormatDate(today)
	res.MaxNights = engine.MaxAvailableNights(stays, room, today)
	res.Unlimited = res.MaxNights == 0

	return res, nil
}

func (s *serviceImpl) ChargeTotal(ctx context.Context, room int) (res dto.ChargesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChargeTotal")
	defer scope.End()
	defer scope.TraceIfError(err)

	consumptions, err := s.store.ReadConsumptions(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read consumptions")

		return res, fmt.Errorf("failed to read consumptions: %w", err)
	}

	res.Room = room

	for _, record := range consumptions {
		if record.Room == room {
			res.Total += record.Amount
			res.Lines++
		}
	}

	return res, nil
}
