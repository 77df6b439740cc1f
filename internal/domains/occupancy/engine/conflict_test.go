package engine_test

import (
	"testing"

	"frontdesk/internal/domains/occupancy/engine"
	stay "frontdesk/internal/domains/stay/model"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableRooms(t *testing.T) {
	today := date("2026-03-05")
	stays := []stay.StayRecord{
		record(101, "2026-03-01", "2026-03-09", "Busy", 30, ""),
		record(102, "2026-03-08", "2026-03-09", "Coming", 30, ""),
	}
	occupancy := engine.Resolve(stays, today)

	assert.Equal(t, []int{102, 103, 104, 105, 201, 202}, engine.AvailableRooms(smallPlan(t), occupancy))
	assert.Equal(t, []int{102, 104, 105, 201, 202}, engine.AvailableRooms(smallPlan(t), occupancy, 103))
}

func TestValidateNewStay(t *testing.T) {
	today := date("2026-03-05")
	stays := []stay.StayRecord{
		record(101, "2026-03-10", "2026-03-15", "Reserved", 30, ""),
		record(102, "2026-03-01", "2026-03-07", "Staying", 30, ""),
		record(103, "2026-03-08", "bad-date", "Unknown end", 30, ""),
		record(104, "2026-03-12", "2026-03-14", "Second", 30, ""),
		record(104, "2026-03-09", "2026-03-11", "First", 30, ""),
	}

	tests := []struct {
		name         string
		room         int
		checkIn      string
		checkOut     string
		expectErr    func(error) bool
		maxNights    int
		blockingDate string
	}{
		{
			name:         "future reservation truncates the window",
			room:         101,
			checkIn:      "2026-03-05",
			checkOut:     "2026-03-12",
			expectErr:    failure.IsConflict,
			maxNights:    5,
			blockingDate: "2026-03-10",
		},
		{
			name:     "ends on the reservation check-in",
			room:     101,
			checkIn:  "2026-03-05",
			checkOut: "2026-03-10",
		},
		{
			name:     "after the reservation",
			room:     101,
			checkIn:  "2026-03-15",
			checkOut: "2026-03-20",
		},
		{
			name:         "occupied today",
			room:         102,
			checkIn:      "2026-03-05",
			checkOut:     "2026-03-06",
			expectErr:    failure.IsConflict,
			maxNights:    0,
			blockingDate: "2026-03-05",
		},
		{
			name:         "future window collides with the current stay",
			room:         102,
			checkIn:      "2026-03-06",
			checkOut:     "2026-03-08",
			expectErr:    failure.IsConflict,
			maxNights:    0,
			blockingDate: "2026-03-06",
		},
		{
			name:     "after the current stay",
			room:     102,
			checkIn:  "2026-03-07",
			checkOut: "2026-03-08",
		},
		{
			name:     "unparseable check-out carries no conflict",
			room:     103,
			checkIn:  "2026-03-09",
			checkOut: "2026-03-12",
		},
		{
			name:         "nearest of several reservations blocks",
			room:         104,
			checkIn:      "2026-03-06",
			checkOut:     "2026-03-20",
			expectErr:    failure.IsConflict,
			maxNights:    3,
			blockingDate: "2026-03-09",
		},
		{
			name:     "empty room always fits",
			room:     201,
			checkIn:  "2026-03-05",
			checkOut: "2027-03-05",
		},
		{
			name:      "unknown room",
			room:      999,
			checkIn:   "2026-03-05",
			checkOut:  "2026-03-06",
			expectErr: failure.IsValidation,
		},
		{
			name:      "empty window",
			room:      201,
			checkIn:   "2026-03-06",
			checkOut:  "2026-03-06",
			expectErr: failure.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.ValidateNewStay(smallPlan(t), stays, tt.room, date(tt.checkIn), date(tt.checkOut), today)

			if tt.expectErr == nil {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, tt.expectErr(err), "unexpected error kind: %v", err)

			if tt.blockingDate == "" {
				return
			}

			conflict, ok := failure.AsConflict(err)
			require.True(t, ok)
			assert.Equal(t, tt.maxNights, conflict.MaxNights)
			assert.Equal(t, date(tt.blockingDate), conflict.BlockingDate)
			assert.Equal(t, tt.room, conflict.Room)
		})
	}
}

func TestValidateNewStay_EmptyRoomAnyWindow(t *testing.T) {
	today := date("2026-03-05")
	plan := smallPlan(t)

	for offset := range 30 {
		checkIn := today.AddDate(0, 0, offset)

		for nights := 1; nights <= 10; nights++ {
			err := engine.ValidateNewStay(plan, nil, 105, checkIn, checkIn.AddDate(0, 0, nights), today)
			require.NoError(t, err)
		}
	}
}

func TestMaxAvailableNights(t *testing.T) {
	today := date("2026-03-05")
	stays := []stay.StayRecord{
		record(101, "2026-03-20", "2026-03-22", "Later", 30, ""),
		record(101, "2026-03-09", "2026-03-11", "Sooner", 30, ""),
		record(101, "2026-03-01", "2026-03-06", "Now", 30, ""),
		record(102, "garbage", "2026-03-11", "Broken", 30, ""),
	}

	assert.Equal(t, 4, engine.MaxAvailableNights(stays, 101, today))
	assert.Equal(t, 0, engine.MaxAvailableNights(stays, 102, today))
	assert.Equal(t, 0, engine.MaxAvailableNights(stays, 103, today))
}
