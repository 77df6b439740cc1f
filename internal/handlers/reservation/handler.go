package reservation

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/reservation/model/dto"
	"frontdesk/internal/domains/reservation/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Delete("/", handler.PurgeReservations)
		routerGroup.Post("/import", handler.ImportReservations)
	})
}

// GetSummary counts stored reservations per check-in date.
// @Summary Summarize reservations
// @Tags Reservation
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse] "Summary"
// @Failure 503 {object} response.Error
// @Router /v1/reservations/summary [get]
// @Security APIKeyAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	res, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to summarize reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// PurgeReservations removes every reservation checking in on a date.
// @Summary Purge reservations by check-in date
// @Description A snapshot of the stay set is stored first when snapshots are enabled.
// @Tags Reservation
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.PurgeResponse] "Purge result"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations [delete]
// @Security APIKeyAuth
func (handler *Handler) PurgeReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PurgeReservations")
	defer scope.End()

	req := dto.PurgeRequest{CheckIn: r.URL.Query().Get(constant.RequestParamCheckIn)}
	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	checkIn, _ := shared.ParseDate(req.CheckIn)

	res, err := handler.service.PurgeByCheckIn(ctx, checkIn)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("check_in", req.CheckIn).Msg("failed to purge reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations purged successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// ImportReservations appends the reservations of an uploaded file.
// @Summary Import reservations
// @Description Accepts a csv or xlsx file with the header room,check_in,check_out,party_size,name,age,group_key,services,notes.
// @Tags Reservation
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Reservation file"
// @Success 201 {object} response.Data[dto.ImportResponse] "Import result"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations/import [post]
// @Security APIKeyAuth
func (handler *Handler) ImportReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportReservations")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	if err := validator.ValidateStruct(&dto.ImportRequest{File: fileHeader}); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	format, err := dto.FormatOf(fileHeader.Filename)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Import(ctx, format, file)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("file", fileHeader.Filename).Msg("failed to import reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations imported successfully")

	response.WithJSON(w, http.StatusCreated, res)
}
