package engine

import (
	"time"

	stay "frontdesk/internal/domains/stay/model"
)

// Occupant is the representative ("titular") of a room.
type Occupant struct {
	Room      int    `json:"room"`
	Name      string `json:"name"`
	PartySize int    `json:"party_size"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Services  string `json:"services"`
	Age       int    `json:"age,omitempty"`
	GroupKey  string `json:"group_key,omitempty"`
}

// Occupancy holds the active and future representatives keyed by room.
// A room may sit in both maps: occupied now and booked again later.
type Occupancy struct {
	Active map[int]Occupant
	Future map[int]Occupant
}

func occupantOf(room int, record stay.StayRecord, active bool) Occupant {
	occupant := Occupant{
		Room:      room,
		Name:      record.Name,
		PartySize: record.PartySize,
		CheckIn:   record.CheckIn,
		CheckOut:  record.CheckOut,
		Services:  record.Services,
	}

	if active {
		occupant.Age = max(record.Age, 0)
		occupant.GroupKey = record.GroupKey
	}

	return occupant
}

// oldest returns the max-age record, the first one wins on ties.
func oldest(records []stay.StayRecord) stay.StayRecord {
	titular := records[0]

	for _, record := range records[1:] {
		if max(record.Age, 0) > max(titular.Age, 0) {
			titular = record
		}
	}

	return titular
}

// Partition splits records into active and future, keeping their order.
func Partition(records []stay.StayRecord, today time.Time) (active, future []stay.StayRecord) {
	for _, record := range records {
		if IsActive(record, today) {
			active = append(active, record)
		} else {
			future = append(future, record)
		}
	}

	return active, future
}

// Resolve picks one representative per room for today.
//
// Active: a group key spanning several rooms speaks for every one of those rooms through its
// oldest member. Any other room is represented by its only record or by its oldest record.
// Future: the earliest upcoming reservation of each room.
func Resolve(records []stay.StayRecord, today time.Time) Occupancy {
	active, future := Partition(records, today)

	return Occupancy{
		Active: resolveActive(active),
		Future: resolveFuture(future),
	}
}

func resolveActive(active []stay.StayRecord) map[int]Occupant {
	byRoom := map[int][]stay.StayRecord{}
	roomOrder := []int{}

	byGroup := map[string][]stay.StayRecord{}
	groupOrder := []string{}

	for _, record := range active {
		if _, seen := byRoom[record.Room]; !seen {
			roomOrder = append(roomOrder, record.Room)
		}

		byRoom[record.Room] = append(byRoom[record.Room], record)

		if record.GroupKey == "" {
			continue
		}

		if _, seen := byGroup[record.GroupKey]; !seen {
			groupOrder = append(groupOrder, record.GroupKey)
		}

		byGroup[record.GroupKey] = append(byGroup[record.GroupKey], record)
	}

	result := make(map[int]Occupant, len(byRoom))

	for _, key := range groupOrder {
		members := byGroup[key]
		if distinctRooms(members) < 2 {
			continue
		}

		titular := oldest(members)

		for _, member := range members {
			if _, taken := result[member.Room]; !taken {
				result[member.Room] = occupantOf(member.Room, titular, true)
			}
		}
	}

	for _, room := range roomOrder {
		if _, taken := result[room]; taken {
			continue
		}

		result[room] = occupantOf(room, oldest(byRoom[room]), true)
	}

	return result
}

func resolveFuture(future []stay.StayRecord) map[int]Occupant {
	earliest := map[int]stay.StayRecord{}

	for _, record := range future {
		current, ok := earliest[record.Room]
		if !ok {
			earliest[record.Room] = record

			continue
		}

		// Future records always carry a parseable check-in.
		recordIn, _ := ParseDate(record.CheckIn)
		currentIn, _ := ParseDate(current.CheckIn)

		if recordIn.Before(currentIn) {
			earliest[record.Room] = record
		}
	}

	result := make(map[int]Occupant, len(earliest))
	for room, record := range earliest {
		result[room] = occupantOf(room, record, false)
	}

	return result
}

func distinctRooms(records []stay.StayRecord) int {
	rooms := map[int]struct{}{}
	for _, record := range records {
		rooms[record.Room] = struct{}{}
	}

	return len(rooms)
}
