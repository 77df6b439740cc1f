package dashboard

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/occupancy/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
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
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDashboard)
		routerGroup.Get("/export", handler.ExportDashboard)
	})
}

// GetDashboard classifies every room of the floor plan for a date.
// @Summary Get the occupancy dashboard
// @Description Room status map, active and future occupants, aggregate stats and booking violations for a date.
// @Tags Dashboard
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.DashboardResponse] "Dashboard"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/dashboard [get]
// @Security APIKeyAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	today, err := shared.DateParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	dashboard, err := handler.service.Dashboard(ctx, today)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute dashboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard computed successfully")

	response.WithJSON(w, http.StatusOK, dashboard)
}

// ExportDashboard downloads the dashboard as a spreadsheet.
// @Summary Export the occupancy dashboard
// @Description Room status map and summary for a date as an xlsx workbook.
// @Tags Dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {file} file "Workbook"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/dashboard/export [get]
// @Security APIKeyAuth
func (handler *Handler) ExportDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportDashboard")
	defer scope.End()

	today, err := shared.DateParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	fileName, content, err := handler.service.ExportDashboard(ctx, today)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export dashboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard exported successfully")

	response.WithFile(w, fileName, constant.ContentTypeXLSX, content)
}
