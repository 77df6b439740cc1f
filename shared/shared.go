package shared

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

// ParseDate reads a canonical date, today in the hotel timezone when value is empty.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == constant.Empty {
		return timezone.Today(), nil
	}

	date, err := time.Parse(constant.DateLayout, value)
	if err != nil {
		return time.Time{}, failure.InvalidDateParam
	}

	return date, nil
}

// DateParam reads the date query parameter of r.
func DateParam(r *http.Request) (time.Time, error) {
	return ParseDate(r.URL.Query().Get(constant.RequestParamDate))
}

func ParseRoom(value string) (int, error) {
	room, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || room <= 0 {
		return 0, failure.InvalidRoomParam
	}

	return room, nil
}

// ParseRooms reads a comma separated room list, empty when value is empty.
func ParseRooms(value string) ([]int, error) {
	rooms := []int{}

	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == constant.Empty {
			continue
		}

		room, err := ParseRoom(part)
		if err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	return rooms, nil
}
