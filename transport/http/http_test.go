package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/occupancy/model/dto"
	occupancyMocks "frontdesk/internal/domains/occupancy/mocks"
	"frontdesk/internal/handlers/dashboard"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	httpTransport "frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) (*httpTransport.HTTP, *occupancyMocks.MockOccupancy) {
	ctrl := gomock.NewController(t)
	service := occupancyMocks.NewMockOccupancy(ctrl)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{}
	cfg.App.APIKey = "desk-key"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"*"}

	otel := mocks.NewOtel()
	routes := router.New(router.DomainHandlers{Dashboard: dashboard.New(service, otel)})

	server := httpTransport.New(cfg, routes,
		middleware.NewAppMiddleware(otel, cfg, cache.NewRedisCache(client, otel)),
		middleware.NewAuthMiddleware(otel, cfg))

	return server, service
}

func TestHTTP_Health(t *testing.T) {
	server, _ := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.ResponseMessageHealthy)

	server.State = httpTransport.ServerStateInGracePeriod

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.ResponseErrorPrepareShutdown)

	server.State = httpTransport.ServerStateInCleanupPeriod

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.ResponseErrorUnhealthy)
}

func TestHTTP_APIKeyGuardsVersionedRoutes(t *testing.T) {
	server, service := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard?date=2026-03-05", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	service.EXPECT().Dashboard(gomock.Any(), gomock.Any()).Return(dto.DashboardResponse{Date: "2026-03-05"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?date=2026-03-05", nil)
	req.Header.Set(constant.RequestHeaderAPIKey, "desk-key")

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2026-03-05"`)
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
}
