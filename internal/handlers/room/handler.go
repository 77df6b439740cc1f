package room

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/occupancy/model/dto"
	"frontdesk/internal/domains/occupancy/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Occupancy
	otel    otel.Otel
}

func New(service service.Occupancy, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/available", handler.GetAvailableRooms)
		routerGroup.Get("/{room}/max-nights", handler.GetMaxNights)
		routerGroup.Get("/{room}/charges", handler.GetCharges)
	})

	router.Post("/stays/validate", handler.ValidateStay)
}

// GetAvailableRooms lists rooms without an active stay.
// @Summary List available rooms
// @Description Plan rooms without an active stay on the date. Future reservations do not block this list.
// @Tags Room
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Param excluding query string false "Comma separated rooms to leave out"
// @Success 200 {object} response.Data[dto.AvailableRoomsResponse] "Available rooms"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/rooms/available [get]
// @Security APIKeyAuth
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	today, err := shared.DateParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	excluding, err := shared.ParseRooms(r.URL.Query().Get(constant.RequestParamExcluding))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.AvailableRooms(ctx, today, excluding...)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list available rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available rooms listed successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetMaxNights returns the nights a room stays free from a date.
// @Summary Get the longest free stay of a room
// @Description Nights until the nearest future check-in of the room. Unlimited when nothing is booked.
// @Tags Room
// @Produce json
// @Param room path integer true "Room number"
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.MaxNightsResponse] "Max nights"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/rooms/{room}/max-nights [get]
// @Security APIKeyAuth
func (handler *Handler) GetMaxNights(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaxNights")
	defer scope.End()

	room, err := shared.ParseRoom(chi.URLParam(r, constant.RequestParamRoom))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	today, err := shared.DateParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.MaxAvailableNights(ctx, room, today)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("room", room).Msg("failed to compute max nights")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Max nights computed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetCharges sums the consumption rows of a room.
// @Summary Get the charges of a room
// @Tags Room
// @Produce json
// @Param room path integer true "Room number"
// @Success 200 {object} response.Data[dto.ChargesResponse] "Charges"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/rooms/{room}/charges [get]
// @Security APIKeyAuth
func (handler *Handler) GetCharges(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCharges")
	defer scope.End()

	room, err := shared.ParseRoom(chi.URLParam(r, constant.RequestParamRoom))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.ChargeTotal(ctx, room)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("room", room).Msg("failed to sum charges")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ValidateStay checks whether a stay window fits in a room.
// @Summary Validate a proposed stay
// @Description Succeeds when the window is free. A conflict carries the blocking date and the longest stay that still fits.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.ValidateStayRequest true "Proposed stay"
// @Success 200 {object} response.Data[dto.ValidateStayResponse] "Stay fits"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/stays/validate [post]
// @Security APIKeyAuth
func (handler *Handler) ValidateStay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateStay")
	defer scope.End()

	var req dto.ValidateStayRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	// Bodies are validated as canonical dates, these cannot fail.
	checkIn, _ := shared.ParseDate(req.CheckIn)
	checkOut, _ := shared.ParseDate(req.CheckOut)

	today, err := shared.ParseDate(req.Date)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.ValidateNewStay(ctx, req.Room, checkIn, checkOut, today); err != nil {
		scope.TraceError(err)
		log.Info().Err(err).Int("room", req.Room).Msg("stay does not fit")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stay validated successfully")

	response.WithJSON(w, http.StatusOK, dto.ValidateStayResponse{
		Room:      req.Room,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Available: true,
	})
}
