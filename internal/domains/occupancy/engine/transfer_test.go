package engine_test

import (
	"testing"

	consumption "frontdesk/internal/domains/consumption/model"
	"frontdesk/internal/domains/occupancy/engine"
	stay "frontdesk/internal/domains/stay/model"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanTransfer(t *testing.T) {
	today := date("2026-03-05")
	stays := []stay.StayRecord{
		record(101, "2026-03-01", "2026-03-08", "Parent", 41, "V1"),
		record(101, "2026-03-01", "2026-03-08", "Child", 9, "V1"),
		record(101, "2026-03-20", "2026-03-22", "Next guest", 30, ""),
		record(103, "2026-03-01", "2026-03-08", "Neighbour", 30, ""),
	}
	stays[0].Notes = "late arrival"

	consumptions := []consumption.Consumption{
		{ID: "c1", Room: 101, Amount: 10},
		{ID: "c2", Room: 101, Amount: 5},
		{ID: "c3", Room: 103, Amount: 1},
	}

	result, err := engine.PlanTransfer(smallPlan(t), stays, consumptions,
		engine.TransferRequest{Origin: 101, Destination: 202, Reason: "broken AC"}, today)
	require.NoError(t, err)

	assert.Equal(t, "Parent", result.OccupantName)
	assert.Equal(t, 2, result.Relocated)
	assert.Len(t, result.Moved, 2)
	assert.Nil(t, result.Blocking)

	assert.Equal(t, 202, result.Stays[0].Room)
	assert.Equal(t, "late arrival | moved from room 101, reason: broken AC", result.Stays[0].Notes)
	assert.Equal(t, 202, result.Stays[1].Room)
	assert.Equal(t, "moved from room 101, reason: broken AC", result.Stays[1].Notes)
	assert.Equal(t, 101, result.Stays[2].Room, "future reservation stays on the origin")
	assert.Equal(t, 103, result.Stays[3].Room)

	keyed := map[int]int{}
	for _, record := range result.Consumptions {
		keyed[record.Room]++
	}

	assert.Equal(t, 0, keyed[101])
	assert.Equal(t, 2, keyed[202])
	assert.Equal(t, 1, keyed[103])

	assert.Equal(t, 101, stays[0].Room, "input is not modified")
	assert.Equal(t, 101, consumptions[0].Room)
}

func TestPlanTransfer_Preconditions(t *testing.T) {
	today := date("2026-03-05")
	stays := []stay.StayRecord{
		record(101, "2026-03-01", "2026-03-08", "Guest", 41, ""),
		record(102, "2026-03-01", "2026-03-08", "Other", 30, ""),
		record(104, "2026-03-09", "2026-03-10", "Reserved", 30, ""),
	}

	tests := []struct {
		name    string
		req     engine.TransferRequest
		isError func(error) bool
	}{
		{name: "same room", req: engine.TransferRequest{Origin: 101, Destination: 101}, isError: failure.IsValidation},
		{name: "destination outside plan", req: engine.TransferRequest{Origin: 101, Destination: 999}, isError: failure.IsValidation},
		{name: "origin not occupied", req: engine.TransferRequest{Origin: 103, Destination: 105}, isError: failure.IsNotFound},
		{name: "origin only reserved", req: engine.TransferRequest{Origin: 104, Destination: 105}, isError: failure.IsNotFound},
		{name: "destination occupied", req: engine.TransferRequest{Origin: 101, Destination: 102}, isError: failure.IsConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.PlanTransfer(smallPlan(t), stays, nil, tt.req, today)

			assert.True(t, tt.isError(err), "unexpected error: %v", err)
		})
	}
}

func TestPlanTransfer_FuturePolicy(t *testing.T) {
	today := date("2026-03-05")
	stays := []stay.StayRecord{
		record(101, "2026-03-01", "2026-03-10", "Guest", 41, ""),
		record(202, "2026-03-08", "2026-03-12", "Booked", 30, ""),
	}

	t.Run("ignore", func(t *testing.T) {
		result, err := engine.PlanTransfer(smallPlan(t), stays, nil,
			engine.TransferRequest{Origin: 101, Destination: 202, Policy: engine.FuturePolicyIgnore}, today)

		require.NoError(t, err)
		assert.Nil(t, result.Blocking)
	})

	t.Run("warn", func(t *testing.T) {
		result, err := engine.PlanTransfer(smallPlan(t), stays, nil,
			engine.TransferRequest{Origin: 101, Destination: 202, Policy: engine.FuturePolicyWarn}, today)

		require.NoError(t, err)
		require.NotNil(t, result.Blocking)
		assert.Equal(t, "Booked", result.Blocking.Name)
	})

	t.Run("reject", func(t *testing.T) {
		_, err := engine.PlanTransfer(smallPlan(t), stays, nil,
			engine.TransferRequest{Origin: 101, Destination: 202, Policy: engine.FuturePolicyReject}, today)

		conflict, ok := failure.AsConflict(err)
		require.True(t, ok)
		assert.Equal(t, 3, conflict.MaxNights)
		assert.Equal(t, date("2026-03-08"), conflict.BlockingDate)
	})

	t.Run("reservation after checkout does not block", func(t *testing.T) {
		later := []stay.StayRecord{
			record(101, "2026-03-01", "2026-03-07", "Guest", 41, ""),
			record(202, "2026-03-07", "2026-03-12", "Booked", 30, ""),
		}

		result, err := engine.PlanTransfer(smallPlan(t), later, nil,
			engine.TransferRequest{Origin: 101, Destination: 202, Policy: engine.FuturePolicyReject}, today)

		require.NoError(t, err)
		assert.Nil(t, result.Blocking)
	})
}

func TestTransferNote(t *testing.T) {
	assert.Equal(t, "moved from room 101, reason: noise", engine.TransferNote(101, " noise "))
	assert.Equal(t, "moved from room 101", engine.TransferNote(101, ""))
}
