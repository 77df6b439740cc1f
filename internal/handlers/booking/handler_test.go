package booking_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/handlers/booking"
	"frontdesk/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var today = time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

func TestHandler_WalkIn(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(service *bookingMocks.MockBooking)
		expectStatus int
		expectBody   string
	}{
		{
			name: "walk-in booked",
			body: `{"room":110,"name":"Ana Diaz","party_size":2,"nights":3,"date":"2026-03-05"}`,
			setupMock: func(service *bookingMocks.MockBooking) {
				req := dto.WalkInRequest{Room: 110, Name: "Ana Diaz", PartySize: 2, Nights: 3, Date: "2026-03-05"}
				service.EXPECT().WalkIn(gomock.Any(), req, today).Return(dto.StayResponse{
					Room:     110,
					Name:     "Ana Diaz",
					CheckIn:  "2026-03-05",
					CheckOut: "2026-03-08",
				}, nil)
			},
			expectStatus: http.StatusCreated,
			expectBody:   `"check_out":"2026-03-08"`,
		},
		{
			name:         "missing room",
			body:         `{"name":"Ana Diaz"}`,
			setupMock:    func(_ *bookingMocks.MockBooking) {},
			expectStatus: http.StatusBadRequest,
			expectBody:   "Room is required",
		},
		{
			name:         "malformed body",
			body:         `{"room":`,
			setupMock:    func(_ *bookingMocks.MockBooking) {},
			expectStatus: http.StatusBadRequest,
		},
		{
			name: "room taken",
			body: `{"room":110,"nights":7,"date":"2026-03-05"}`,
			setupMock: func(service *bookingMocks.MockBooking) {
				service.EXPECT().WalkIn(gomock.Any(), gomock.Any(), today).Return(dto.StayResponse{},
					failure.RoomConflict(110, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 5, "room 110 is booked from 2026-03-10"))
			},
			expectStatus: http.StatusConflict,
			expectBody:   `"max_nights":5`,
		},
		{
			name: "store unavailable",
			body: `{"room":110,"date":"2026-03-05"}`,
			setupMock: func(service *bookingMocks.MockBooking) {
				service.EXPECT().WalkIn(gomock.Any(), gomock.Any(), today).
					Return(dto.StayResponse{}, failure.StoreUnavailable(errors.New("lock busy")))
			},
			expectStatus: http.StatusServiceUnavailable,
			expectBody:   "record store unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := bookingMocks.NewMockBooking(ctrl)
			tt.setupMock(service)

			handler := booking.New(service, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings/walk-in", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectBody)
		})
	}
}
