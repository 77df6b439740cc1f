package engine

import (
	"strings"
	"time"

	stay "frontdesk/internal/domains/stay/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

// ParseDate reads a day-granularity date in the canonical layout.
func ParseDate(value string) (time.Time, bool) {
	date, err := time.Parse(constant.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

// FormatDate writes a date in the canonical layout.
func FormatDate(date time.Time) string {
	return timezone.DateOf(date).Format(constant.DateLayout)
}

// IsActive reports whether the record has checked in by today.
// An unparseable check-in counts as active so an occupied room is never hidden.
func IsActive(record stay.StayRecord, today time.Time) bool {
	checkIn, ok := ParseDate(record.CheckIn)
	if !ok {
		return true
	}

	return !checkIn.After(timezone.DateOf(today))
}

// IsFuture reports whether the record checks in after today.
func IsFuture(record stay.StayRecord, today time.Time) bool {
	return !IsActive(record, today)
}

// window returns [check_in, check_out) of a record. ok is false when either bound is unparseable,
// in which case the record carries no conflict information.
func window(record stay.StayRecord) (checkIn, checkOut time.Time, ok bool) {
	checkIn, okIn := ParseDate(record.CheckIn)
	checkOut, okOut := ParseDate(record.CheckOut)

	return checkIn, checkOut, okIn && okOut
}

// Overlaps reports whether two half-open stays share at least one night.
func Overlaps(existingIn, existingOut, proposedIn, proposedOut time.Time) bool {
	return proposedIn.Before(existingOut) && existingIn.Before(proposedOut)
}

// DaysBetween counts calendar days from one date to another.
func DaysBetween(from, to time.Time) int {
	return int(timezone.DateOf(to).Sub(timezone.DateOf(from)).Hours() / constant.HoursPerDay)
}

// SameDay compares the calendar date of a stored value with a date.
func SameDay(value string, date time.Time) bool {
	parsed, ok := ParseDate(value)

	return ok && parsed.Equal(timezone.DateOf(date))
}
