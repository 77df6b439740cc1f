package transfer_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"frontdesk/infras/otel/mocks"
	transferMocks "frontdesk/internal/domains/transfer/mocks"
	"frontdesk/internal/domains/transfer/model/dto"
	"frontdesk/internal/handlers/transfer"
	"frontdesk/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var today = time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

func TestHandler_Transfer(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(service *transferMocks.MockTransfer)
		expectStatus int
		expectBody   string
	}{
		{
			name: "transfer with a warning",
			body: `{"origin":"101","destination":"230","reason":"broken heater","date":"2026-03-05"}`,
			setupMock: func(service *transferMocks.MockTransfer) {
				req := dto.TransferRequest{Origin: "101", Destination: "230", Reason: "broken heater", Date: "2026-03-05"}
				service.EXPECT().Transfer(gomock.Any(), req, today).Return(dto.TransferResponse{
					Origin:           101,
					Destination:      230,
					OccupantName:     "Marta Ruiz",
					Moved:            1,
					RelocatedCharges: 2,
					Warning:          "room 230 is reserved from 2026-03-09 by Lucia Perez",
				}, nil)
			},
			expectStatus: http.StatusOK,
			expectBody:   `"relocated_charges":2`,
		},
		{
			name:         "missing destination",
			body:         `{"origin":"101"}`,
			setupMock:    func(_ *transferMocks.MockTransfer) {},
			expectStatus: http.StatusBadRequest,
			expectBody:   "Destination is required",
		},
		{
			name: "origin not occupied",
			body: `{"origin":"104","destination":"230","date":"2026-03-05"}`,
			setupMock: func(service *transferMocks.MockTransfer) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Any(), today).
					Return(dto.TransferResponse{}, failure.NotFound("room 104 is not occupied"))
			},
			expectStatus: http.StatusNotFound,
			expectBody:   "room 104 is not occupied",
		},
		{
			name:         "malformed date",
			body:         `{"origin":"101","destination":"230","date":"2026/03/05"}`,
			setupMock:    func(_ *transferMocks.MockTransfer) {},
			expectStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := transferMocks.NewMockTransfer(ctrl)
			tt.setupMock(service)

			handler := transfer.New(service, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/transfers", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectBody)
		})
	}
}
