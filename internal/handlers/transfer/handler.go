package transfer

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/transfer/model/dto"
	"frontdesk/internal/domains/transfer/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Transfer
	otel    otel.Otel
}

func New(service service.Transfer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/transfers", handler.Transfer)
}

// Transfer moves the current party of a room to another room.
// @Summary Transfer a room
// @Description Moves every active stay of the origin and its charges to the destination in one write.
// @Tags Transfer
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Transfer"
// @Success 200 {object} response.Data[dto.TransferResponse] "Transfer done"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/transfers [post]
// @Security APIKeyAuth
func (handler *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Transfer")
	defer scope.End()

	var req dto.TransferRequest
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

	res, err := handler.service.Transfer(ctx, req, today)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("origin", req.Origin).Str("destination", req.Destination).Msg("failed to transfer room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room transferred successfully")

	response.WithJSON(w, http.StatusOK, res)
}
