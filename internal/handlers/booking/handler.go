package booking

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/walk-in", handler.WalkIn)
	})
}

// WalkIn books a room from today.
// @Summary Book a walk-in guest
// @Description Books the room from the reference date for the requested nights. Omitted fields take the desk defaults.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.WalkInRequest true "Walk-in"
// @Success 201 {object} response.Data[dto.StayResponse] "Stay booked"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/walk-in [post]
// @Security APIKeyAuth
func (handler *Handler) WalkIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".WalkIn")
	defer scope.End()

	var req dto.WalkInRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	today, err := shared.ParseDate(req.Date)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.WalkIn(ctx, req, today)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("room", req.Room).Msg("failed to book walk-in")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Walk-in booked successfully")

	response.WithJSON(w, http.StatusCreated, res)
}
