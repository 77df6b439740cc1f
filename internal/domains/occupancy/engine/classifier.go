package engine

import (
	"slices"
	"sort"
	"time"

	consumption "frontdesk/internal/domains/consumption/model"
	stay "frontdesk/internal/domains/stay/model"
)

type RoomStatus string

const (
	StatusVacant              RoomStatus = "vacant"
	StatusReserved            RoomStatus = "reserved"
	StatusOccupied            RoomStatus = "occupied"
	StatusOccupiedWithCharges RoomStatus = "occupied_with_charges"
	StatusCheckoutToday       RoomStatus = "checkout_today"
)

// ChargeIndex sums consumption amounts per room. A room is charged when it has any row at all.
type ChargeIndex map[int]float64

func NewChargeIndex(consumptions []consumption.Consumption) ChargeIndex {
	index := ChargeIndex{}
	for _, record := range consumptions {
		index[record.Room] += record.Amount
	}

	return index
}

func (c ChargeIndex) Has(room int) bool {
	_, ok := c[room]

	return ok
}

// Total returns the summed charges of room, 0 when it has none.
func (c ChargeIndex) Total(room int) float64 {
	return c[room]
}

// Classify applies the status priority: checkout today, occupied with charges, occupied, reserved, vacant.
func Classify(room int, occupancy Occupancy, charges ChargeIndex, today time.Time) RoomStatus {
	if occupant, ok := occupancy.Active[room]; ok {
		switch {
		case SameDay(occupant.CheckOut, today):
			return StatusCheckoutToday
		case charges.Has(room):
			return StatusOccupiedWithCharges
		default:
			return StatusOccupied
		}
	}

	if _, ok := occupancy.Future[room]; ok {
		return StatusReserved
	}

	return StatusVacant
}

type RoomView struct {
	Room        int        `json:"room"`
	Floor       string     `json:"floor"`
	Status      RoomStatus `json:"status"`
	Occupant    *Occupant  `json:"occupant,omitempty"`
	Reservation *Occupant  `json:"reservation,omitempty"`
	Charges     float64    `json:"charges"`
}

type Stats struct {
	TotalRooms     int `json:"total_rooms"`
	Occupied       int `json:"occupied"`
	WithCharges    int `json:"with_charges"`
	WithoutCharges int `json:"without_charges"`
	CheckoutToday  int `json:"checkout_today"`
	Reserved       int `json:"reserved"`
	Vacant         int `json:"vacant"`
}

// Violation is a room held by more than one booking at once.
type Violation struct {
	Room      int      `json:"room"`
	Bookings  int      `json:"bookings"`
	Occupants []string `json:"occupants"`
}

type Dashboard struct {
	Date         time.Time          `json:"date"`
	Rooms        []RoomView         `json:"rooms"`
	Active       map[int]Occupant   `json:"active"`
	Future       map[int]Occupant   `json:"future"`
	Stats        Stats              `json:"stats"`
	Violations   []Violation        `json:"violations"`
	UnknownRooms []int              `json:"unknown_rooms"`
	Statuses     map[int]RoomStatus `json:"-"`
}

// BuildDashboard classifies every room of the plan for today.
func BuildDashboard(plan FloorPlan, stays []stay.StayRecord, consumptions []consumption.Consumption, today time.Time) Dashboard {
	occupancy := Resolve(stays, today)
	charges := NewChargeIndex(consumptions)

	dashboard := Dashboard{
		Date:         today,
		Rooms:        make([]RoomView, 0, plan.Len()),
		Active:       occupancy.Active,
		Future:       occupancy.Future,
		Statuses:     make(map[int]RoomStatus, plan.Len()),
		Violations:   FindViolations(stays, today),
		UnknownRooms: unknownRooms(plan, occupancy),
	}

	for _, floor := range plan.floors {
		for _, room := range floor.Rooms {
			view := RoomView{
				Room:    room,
				Floor:   floor.ID,
				Status:  Classify(room, occupancy, charges, today),
				Charges: charges.Total(room),
			}

			if occupant, ok := occupancy.Active[room]; ok {
				view.Occupant = &occupant
			}

			if reservation, ok := occupancy.Future[room]; ok {
				view.Reservation = &reservation
			}

			dashboard.Rooms = append(dashboard.Rooms, view)
			dashboard.Statuses[room] = view.Status
		}
	}

	dashboard.Stats = Summarize(dashboard.Rooms)

	return dashboard
}

// Summarize counts statuses. A room occupied today and reserved later counts once, as occupied.
func Summarize(rooms []RoomView) Stats {
	stats := Stats{TotalRooms: len(rooms)}

	for _, room := range rooms {
		switch room.Status {
		case StatusCheckoutToday:
			stats.CheckoutToday++
			stats.Occupied++
		case StatusOccupiedWithCharges:
			stats.WithCharges++
			stats.Occupied++
		case StatusOccupied:
			stats.Occupied++
		case StatusReserved:
			stats.Reserved++
		case StatusVacant:
			stats.Vacant++
		}
	}

	stats.WithoutCharges = stats.Occupied - stats.WithCharges

	return stats
}

// FindViolations reports rooms whose active records belong to several bookings.
// Records sharing a group key are one booking; every record without a key is its own.
func FindViolations(stays []stay.StayRecord, today time.Time) []Violation {
	type booking struct {
		keys  map[string]struct{}
		loose int
		names []string
	}

	rooms := map[int]*booking{}

	for _, record := range stays {
		if !IsActive(record, today) {
			continue
		}

		entry, ok := rooms[record.Room]
		if !ok {
			entry = &booking{keys: map[string]struct{}{}}
			rooms[record.Room] = entry
		}

		if record.GroupKey == "" {
			entry.loose++
		} else {
			entry.keys[record.GroupKey] = struct{}{}
		}

		entry.names = append(entry.names, record.Name)
	}

	violations := []Violation{}

	for room, entry := range rooms {
		if count := len(entry.keys) + entry.loose; count > 1 {
			violations = append(violations, Violation{Room: room, Bookings: count, Occupants: entry.names})
		}
	}

	sort.Slice(violations, func(i, j int) bool { return violations[i].Room < violations[j].Room })

	return violations
}

func unknownRooms(plan FloorPlan, occupancy Occupancy) []int {
	unknown := []int{}

	for _, rooms := range []map[int]Occupant{occupancy.Active, occupancy.Future} {
		for room := range rooms {
			if !plan.Contains(room) && !slices.Contains(unknown, room) {
				unknown = append(unknown, room)
			}
		}
	}

	slices.Sort(unknown)

	return unknown
}
