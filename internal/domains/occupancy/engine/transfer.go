package engine

import (
	"fmt"
	"slices"
	"strings"
	"time"

	consumption "frontdesk/internal/domains/consumption/model"
	stay "frontdesk/internal/domains/stay/model"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

// FuturePolicy decides what a transfer does when the destination is reserved later on.
type FuturePolicy string

const (
	FuturePolicyIgnore FuturePolicy = "ignore"
	FuturePolicyWarn   FuturePolicy = "warn"
	FuturePolicyReject FuturePolicy = "reject"
)

type TransferRequest struct {
	Origin      int
	Destination int
	Reason      string
	Policy      FuturePolicy
}

// TransferPlan is the full replacement set produced by a transfer, plus what it moved.
type TransferPlan struct {
	Stays        []stay.StayRecord
	Consumptions []consumption.Consumption
	Moved        []stay.StayRecord
	OccupantName string
	Relocated    int
	Blocking     *stay.StayRecord
}

// TransferNote is appended to every moved record.
func TransferNote(origin int, reason string) string {
	note := fmt.Sprintf("moved from room %d", origin)
	if reason = strings.TrimSpace(reason); reason != "" {
		note += ", reason: " + reason
	}

	return note
}

// PlanTransfer moves every active record of the origin room, and its charges, to the destination.
// Inputs are not modified. Preconditions are checked in order and the first failure wins.
func PlanTransfer(plan FloorPlan, stays []stay.StayRecord, consumptions []consumption.Consumption, req TransferRequest, today time.Time) (TransferPlan, error) {
	today = timezone.DateOf(today)

	if req.Origin == req.Destination {
		return TransferPlan{}, failure.Validation("origin and destination are both room %d", req.Origin)
	}

	if !plan.Contains(req.Destination) {
		return TransferPlan{}, failure.Validation("room %d is not part of the floor plan", req.Destination)
	}

	occupancy := Resolve(stays, today)

	if _, occupied := occupancy.Active[req.Origin]; !occupied {
		return TransferPlan{}, failure.NotFound(fmt.Sprintf("room %d has no active stay", req.Origin))
	}

	if occupant, occupied := occupancy.Active[req.Destination]; occupied {
		return TransferPlan{}, failure.Conflict(fmt.Sprintf("room %d is already occupied by %s", req.Destination, occupant.Name))
	}

	result := TransferPlan{
		Stays:        slices.Clone(stays),
		Consumptions: slices.Clone(consumptions),
	}

	note := TransferNote(req.Origin, req.Reason)

	for i, record := range result.Stays {
		if record.Room != req.Origin || !IsActive(record, today) {
			continue
		}

		record.Room = req.Destination
		record.AppendNote(note)

		result.Stays[i] = record
		result.Moved = append(result.Moved, record)
	}

	result.OccupantName = oldest(result.Moved).Name

	if blocking, found := blockingReservation(stays, result.Moved, req.Destination, today); found {
		switch req.Policy {
		case FuturePolicyReject:
			blockingDate, _ := ParseDate(blocking.CheckIn)
			nights := DaysBetween(today, blockingDate)
			msg := fmt.Sprintf("room %d is reserved from %s, the moved stay runs past it", req.Destination, blocking.CheckIn)

			return TransferPlan{}, failure.RoomConflict(req.Destination, blockingDate, nights, msg) // nolint:wrapcheck
		case FuturePolicyWarn:
			result.Blocking = &blocking
		case FuturePolicyIgnore:
		}
	}

	for i, record := range result.Consumptions {
		if record.Room == req.Origin {
			record.Room = req.Destination
			result.Consumptions[i] = record
			result.Relocated++
		}
	}

	return result, nil
}

// blockingReservation finds the earliest destination reservation that the moved party would run into.
// A moved record without a parseable check-out is treated as open ended.
func blockingReservation(stays, moved []stay.StayRecord, destination int, today time.Time) (stay.StayRecord, bool) {
	next, found := NextReservation(stays, destination, today)
	if !found {
		return stay.StayRecord{}, false
	}

	nextIn, _ := ParseDate(next.CheckIn)

	for _, record := range moved {
		checkOut, ok := ParseDate(record.CheckOut)
		if !ok || nextIn.Before(checkOut) {
			return next, true
		}
	}

	return stay.StayRecord{}, false
}
