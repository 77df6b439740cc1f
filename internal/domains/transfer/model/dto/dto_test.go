package dto_test

import (
	"testing"

	"frontdesk/internal/domains/occupancy/engine"
	stay "frontdesk/internal/domains/stay/model"
	"frontdesk/internal/domains/transfer/model/dto"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestTransferRequest_Rooms(t *testing.T) {
	tests := []struct {
		name        string
		req         dto.TransferRequest
		origin      int
		destination int
		expectError string
	}{
		{name: "numbers", req: dto.TransferRequest{Origin: "101", Destination: " 202 "}, origin: 101, destination: 202},
		{name: "bad origin", req: dto.TransferRequest{Origin: "1O1", Destination: "xx"}, expectError: `origin room "1O1" is not a number`},
		{name: "bad destination", req: dto.TransferRequest{Origin: "101", Destination: "two"}, expectError: `destination room "two" is not a number`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin, destination, err := tt.req.Rooms()

			if tt.expectError != "" {
				assert.EqualError(t, err, tt.expectError)
				assert.True(t, failure.IsValidation(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.origin, origin)
			assert.Equal(t, tt.destination, destination)
		})
	}
}

func TestTransferResponse_FromPlan(t *testing.T) {
	req := engine.TransferRequest{Origin: 101, Destination: 202}
	plan := engine.TransferPlan{
		Moved:        []stay.StayRecord{{Name: "Rosa"}, {Name: "Tomas"}},
		OccupantName: "Rosa",
		Relocated:    2,
	}

	var res dto.TransferResponse
	res.FromPlan(req, plan)

	assert.Equal(t, dto.TransferResponse{Origin: 101, Destination: 202, OccupantName: "Rosa", Moved: 2, RelocatedCharges: 2}, res)

	plan.Blocking = &stay.StayRecord{Name: "Future", CheckIn: "2026-03-10", CheckOut: "2026-03-12"}
	res.FromPlan(req, plan)

	assert.Equal(t, "room 202 is reserved from 2026-03-10 by Future", res.Warning)
	assert.Equal(t, "2026-03-10", res.BlockingReservation.CheckIn)
}
