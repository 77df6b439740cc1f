package engine

import (
	"fmt"
	"time"

	stay "frontdesk/internal/domains/stay/model"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

// AvailableRooms lists plan rooms without an active stay. Future reservations do not block here.
func AvailableRooms(plan FloorPlan, occupancy Occupancy, excluding ...int) []int {
	rooms := []int{}

outer:
	for _, room := range plan.Rooms() {
		if _, occupied := occupancy.Active[room]; occupied {
			continue
		}

		for _, excluded := range excluding {
			if room == excluded {
				continue outer
			}
		}

		rooms = append(rooms, room)
	}

	return rooms
}

// ValidateNewStay checks that [checkIn, checkOut) fits in room. On a collision it returns a
// ConflictError naming the first blocked day and the longest stay that still fits before it.
func ValidateNewStay(plan FloorPlan, stays []stay.StayRecord, room int, checkIn, checkOut, today time.Time) error {
	checkIn, checkOut, today = timezone.DateOf(checkIn), timezone.DateOf(checkOut), timezone.DateOf(today)

	if !plan.Contains(room) {
		return failure.Validation("room %d is not part of the floor plan", room)
	}

	if !checkIn.Before(checkOut) {
		return failure.Validation("check-out %s must be after check-in %s", FormatDate(checkOut), FormatDate(checkIn))
	}

	occupancy := Resolve(stays, today)

	if occupant, occupied := occupancy.Active[room]; occupied && !checkIn.After(today) {
		msg := fmt.Sprintf("room %d is already occupied by %s", room, occupant.Name)

		return failure.RoomConflict(room, today, 0, msg) // nolint:wrapcheck
	}

	blocking, found := firstOverlap(stays, room, checkIn, checkOut)
	if !found {
		return nil
	}

	blockingDate, _ := ParseDate(blocking.CheckIn)
	if blockingDate.Before(checkIn) {
		blockingDate = checkIn
	}

	maxNights := max(DaysBetween(checkIn, blockingDate), 0)

	msg := fmt.Sprintf("room %d is booked from %s, at most %d night(s) available", room, FormatDate(blockingDate), maxNights)
	if maxNights == 0 {
		msg = fmt.Sprintf("room %d is already booked on %s", room, FormatDate(blockingDate))
	}

	return failure.RoomConflict(room, blockingDate, maxNights, msg) // nolint:wrapcheck
}

// firstOverlap returns the overlapping record of room with the earliest check-in.
// Records with an unparseable bound are skipped.
func firstOverlap(stays []stay.StayRecord, room int, checkIn, checkOut time.Time) (stay.StayRecord, bool) {
	var (
		blocking   stay.StayRecord
		blockingIn time.Time
		found      bool
	)

	for _, record := range stays {
		if record.Room != room {
			continue
		}

		existingIn, existingOut, ok := window(record)
		if !ok || !Overlaps(existingIn, existingOut, checkIn, checkOut) {
			continue
		}

		if !found || existingIn.Before(blockingIn) {
			blocking, blockingIn, found = record, existingIn, true
		}
	}

	return blocking, found
}

// MaxAvailableNights returns the nights until the nearest future check-in of room, 0 when nothing is booked.
func MaxAvailableNights(stays []stay.StayRecord, room int, today time.Time) int {
	today = timezone.DateOf(today)
	nights := 0

	for _, record := range stays {
		if record.Room != room {
			continue
		}

		checkIn, ok := ParseDate(record.CheckIn)
		if !ok || !checkIn.After(today) {
			continue
		}

		if days := DaysBetween(today, checkIn); nights == 0 || days < nights {
			nights = days
		}
	}

	return nights
}

// NextReservation returns the earliest record of room checking in after today.
func NextReservation(stays []stay.StayRecord, room int, today time.Time) (stay.StayRecord, bool) {
	var (
		next   stay.StayRecord
		nextIn time.Time
		found  bool
	)

	for _, record := range stays {
		if record.Room != room || !IsFuture(record, today) {
			continue
		}

		checkIn, _ := ParseDate(record.CheckIn)
		if !found || checkIn.Before(nextIn) {
			next, nextIn, found = record, checkIn, true
		}
	}

	return next, found
}
