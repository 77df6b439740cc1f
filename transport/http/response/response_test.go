package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedCode   int
		expectConflict *response.Conflict
	}{
		{
			name:         "validation",
			err:          failure.Validation("invalid room"),
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "plain error",
			err:          errors.New("boom"),
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:           "room conflict",
			err:            failure.RoomConflict(101, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 5, "room 101 is booked"),
			expectedCode:   http.StatusConflict,
			expectConflict: &response.Conflict{Room: 101, BlockingDate: "2026-03-10", MaxNights: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body response.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.err.Error(), *body.Error)
			assert.Equal(t, tt.expectConflict, body.Conflict)
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]int{"rooms": 53})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"rooms":53}}`, rec.Body.String())
}

func TestWithFile(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithFile(rec, "occupancy-2026-03-05.xlsx", "application/octet-stream", []byte("xlsx"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="occupancy-2026-03-05.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx", rec.Body.String())
}
