package engine_test

import (
	"testing"

	consumption "frontdesk/internal/domains/consumption/model"
	"frontdesk/internal/domains/occupancy/engine"
	stay "frontdesk/internal/domains/stay/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallPlan(t *testing.T) engine.FloorPlan {
	t.Helper()

	plan, err := engine.ParseFloorPlan("1:101-105;2:201-202")
	require.NoError(t, err)

	return plan
}

func TestClassify_Priority(t *testing.T) {
	today := date("2026-03-05")
	stays := []stay.StayRecord{
		record(101, "2026-03-01", "2026-03-05", "Leaving", 30, ""),
		record(102, "2026-03-01", "2026-03-09", "Spending", 30, ""),
		record(103, "2026-03-01", "2026-03-09", "Quiet", 30, ""),
		record(104, "2026-03-08", "2026-03-09", "Coming", 30, ""),
	}
	charges := engine.NewChargeIndex([]consumption.Consumption{
		{Room: 101, Amount: 20},
		{Room: 102, Amount: 7.5},
		{Room: 104, Amount: 1},
	})

	occupancy := engine.Resolve(stays, today)

	tests := []struct {
		room     int
		expected engine.RoomStatus
	}{
		{room: 101, expected: engine.StatusCheckoutToday},
		{room: 102, expected: engine.StatusOccupiedWithCharges},
		{room: 103, expected: engine.StatusOccupied},
		{room: 104, expected: engine.StatusReserved},
		{room: 105, expected: engine.StatusVacant},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, engine.Classify(tt.room, occupancy, charges, today), "room %d", tt.room)
	}
}

func TestClassify_ZeroAmountStillCountsAsCharged(t *testing.T) {
	today := date("2026-03-05")
	occupancy := engine.Resolve([]stay.StayRecord{record(101, "2026-03-01", "2026-03-09", "Guest", 30, "")}, today)
	charges := engine.NewChargeIndex([]consumption.Consumption{{Room: 101, Amount: 0}})

	assert.Equal(t, engine.StatusOccupiedWithCharges, engine.Classify(101, occupancy, charges, today))
}

func TestBuildDashboard(t *testing.T) {
	today := date("2026-03-05")
	stays := []stay.StayRecord{
		record(101, "2026-03-01", "2026-03-05", "Leaving", 30, ""),
		record(102, "2026-03-01", "2026-03-09", "Spending", 30, ""),
		record(103, "2026-03-01", "2026-03-09", "Busy", 30, ""),
		record(103, "2026-03-20", "2026-03-22", "Returning", 30, ""),
		record(104, "2026-03-08", "2026-03-09", "Coming", 30, ""),
		record(999, "2026-03-01", "2026-03-09", "Ghost", 30, ""),
	}
	consumptions := []consumption.Consumption{
		{Room: 102, Amount: 7.5},
		{Room: 102, Amount: 2.5},
	}

	dashboard := engine.BuildDashboard(smallPlan(t), stays, consumptions, today)

	require.Len(t, dashboard.Rooms, 7)
	assert.Equal(t, engine.StatusOccupied, dashboard.Statuses[103], "active and reserved room reports occupied")
	assert.NotNil(t, dashboard.Rooms[2].Reservation)
	assert.InDelta(t, 10.0, dashboard.Rooms[1].Charges, 0.001)
	assert.Equal(t, "1", dashboard.Rooms[0].Floor)
	assert.Equal(t, "2", dashboard.Rooms[6].Floor)

	assert.Equal(t, engine.Stats{
		TotalRooms:     7,
		Occupied:       3,
		WithCharges:    1,
		WithoutCharges: 2,
		CheckoutToday:  1,
		Reserved:       1,
		Vacant:         3,
	}, dashboard.Stats)

	assert.Equal(t, []int{999}, dashboard.UnknownRooms)
	assert.Empty(t, dashboard.Violations)
}

func TestBuildDashboard_Idempotent(t *testing.T) {
	today := date("2026-03-05")
	stays := []stay.StayRecord{
		record(101, "2026-03-04", "2026-03-08", "Marta", 40, "V1"),
		record(102, "2026-03-04", "2026-03-08", "Rosa", 65, "V1"),
		record(104, "2026-03-08", "2026-03-09", "Coming", 30, ""),
	}
	consumptions := []consumption.Consumption{{Room: 101, Amount: 3}}

	first := engine.BuildDashboard(smallPlan(t), stays, consumptions, today)
	second := engine.BuildDashboard(smallPlan(t), stays, consumptions, today)

	assert.Equal(t, first, second)
}

func TestBuildDashboard_CheckoutOutranksCharges(t *testing.T) {
	today := date("2026-03-05")
	stays := []stay.StayRecord{record(101, "2026-03-01", "2026-03-05", "Leaving", 30, "")}
	consumptions := []consumption.Consumption{{Room: 101, Amount: 50}}

	dashboard := engine.BuildDashboard(smallPlan(t), stays, consumptions, today)

	assert.Equal(t, engine.StatusCheckoutToday, dashboard.Statuses[101])
	assert.Equal(t, 0, dashboard.Stats.WithCharges)
	assert.Equal(t, 1, dashboard.Stats.WithoutCharges)
}

func TestFindViolations(t *testing.T) {
	today := date("2026-03-05")
	stays := []stay.StayRecord{
		record(101, "2026-03-01", "2026-03-09", "Family A", 40, "V1"),
		record(101, "2026-03-01", "2026-03-09", "Family A kid", 8, "V1"),
		record(102, "2026-03-01", "2026-03-09", "Booking 1", 40, "V2"),
		record(102, "2026-03-02", "2026-03-09", "Booking 2", 40, "V3"),
		record(103, "2026-03-01", "2026-03-09", "Walk-in 1", 40, ""),
		record(103, "2026-03-01", "2026-03-09", "Walk-in 2", 40, ""),
		record(104, "2026-03-01", "2026-03-09", "Now", 40, ""),
		record(104, "2026-03-10", "2026-03-12", "Later", 40, ""),
	}

	violations := engine.FindViolations(stays, today)

	require.Len(t, violations, 2)
	assert.Equal(t, 102, violations[0].Room)
	assert.Equal(t, 2, violations[0].Bookings)
	assert.Equal(t, []string{"Booking 1", "Booking 2"}, violations[0].Occupants)
	assert.Equal(t, 103, violations[1].Room)
}
