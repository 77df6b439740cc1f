package dto

import (
	"fmt"
	"strconv"
	"strings"

	"frontdesk/internal/domains/occupancy/engine"
	"frontdesk/shared/failure"
)

// TransferRequest carries room numbers as text, as typed at the desk.
type TransferRequest struct {
	Origin      string `json:"origin"      validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Reason      string `json:"reason"      validate:"omitempty,max=200"`
	Date        string `json:"date"        validate:"omitempty,datetime=2006-01-02"`
}

func parseRoom(field, value string) (int, error) {
	room, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, failure.Validation("%s room %q is not a number", field, value)
	}

	return room, nil
}

// Rooms parses origin and destination, origin first.
func (r TransferRequest) Rooms() (origin, destination int, err error) {
	if origin, err = parseRoom("origin", r.Origin); err != nil {
		return 0, 0, err
	}

	if destination, err = parseRoom("destination", r.Destination); err != nil {
		return 0, 0, err
	}

	return origin, destination, nil
}

type ReservationResponse struct {
	Name     string `json:"name"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type TransferResponse struct {
	Origin              int                  `json:"origin"`
	Destination         int                  `json:"destination"`
	OccupantName        string               `json:"occupant_name"`
	Moved               int                  `json:"moved"`
	RelocatedCharges    int                  `json:"relocated_charges"`
	Warning             string               `json:"warning,omitempty"`
	BlockingReservation *ReservationResponse `json:"blocking_reservation,omitempty"`
}

func (t *TransferResponse) FromPlan(req engine.TransferRequest, plan engine.TransferPlan) {
	t.Origin = req.Origin
	t.Destination = req.Destination
	t.OccupantName = plan.OccupantName
	t.Moved = len(plan.Moved)
	t.RelocatedCharges = plan.Relocated

	if plan.Blocking != nil {
		t.BlockingReservation = &ReservationResponse{
			Name:     plan.Blocking.Name,
			CheckIn:  plan.Blocking.CheckIn,
			CheckOut: plan.Blocking.CheckOut,
		}
		t.Warning = fmt.Sprintf("room %d is reserved from %s by %s", req.Destination, plan.Blocking.CheckIn, plan.Blocking.Name)
	}
}
