package engine

import (
	"slices"
	"strconv"
	"strings"

	"frontdesk/shared/failure"
)

// DefaultFloorPlan is the reference deployment: three floors, 53 rooms.
const DefaultFloorPlan = "1:101-121;2:222-242;3:343-353"

type Floor struct {
	ID    string `json:"id"`
	Rooms []int  `json:"rooms"`
}

// FloorPlan maps floors to their ordered rooms. It is immutable once built.
type FloorPlan struct {
	floors []Floor
	index  map[int]string
}

// NewFloorPlan builds a plan; a room listed twice is rejected.
func NewFloorPlan(floors ...Floor) (FloorPlan, error) {
	plan := FloorPlan{index: map[int]string{}}

	for _, floor := range floors {
		rooms := slices.Clone(floor.Rooms)

		for _, room := range rooms {
			if previous, ok := plan.index[room]; ok {
				return FloorPlan{}, failure.Validation("room %d listed on floors %s and %s", room, previous, floor.ID)
			}

			plan.index[room] = floor.ID
		}

		plan.floors = append(plan.floors, Floor{ID: floor.ID, Rooms: rooms})
	}

	return plan, nil
}

// ParseFloorPlan reads "floor:room,first-last;floor:..."; an empty value yields the default plan.
func ParseFloorPlan(value string) (FloorPlan, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = DefaultFloorPlan
	}

	floors := []Floor{}

	for _, part := range strings.Split(value, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, list, found := strings.Cut(part, ":")
		if !found || strings.TrimSpace(id) == "" {
			return FloorPlan{}, failure.Validation("invalid floor definition %q", part)
		}

		rooms, err := parseRooms(list)
		if err != nil {
			return FloorPlan{}, err
		}

		floors = append(floors, Floor{ID: strings.TrimSpace(id), Rooms: rooms})
	}

	if len(floors) == 0 {
		return FloorPlan{}, failure.Validation("floor plan has no floors")
	}

	return NewFloorPlan(floors...)
}

func parseRooms(list string) ([]int, error) {
	rooms := []int{}

	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		first, last, isRange := strings.Cut(item, "-")

		start, err := strconv.Atoi(strings.TrimSpace(first))
		if err != nil {
			return nil, failure.Validation("invalid room %q", item)
		}

		end := start

		if isRange {
			if end, err = strconv.Atoi(strings.TrimSpace(last)); err != nil || end < start {
				return nil, failure.Validation("invalid room range %q", item)
			}
		}

		for room := start; room <= end; room++ {
			rooms = append(rooms, room)
		}
	}

	if len(rooms) == 0 {
		return nil, failure.Validation("floor without rooms")
	}

	return rooms, nil
}

// Rooms lists every room, floor by floor, in plan order.
func (p FloorPlan) Rooms() []int {
	rooms := make([]int, 0, len(p.index))

	for _, floor := range p.floors {
		rooms = append(rooms, floor.Rooms...)
	}

	return rooms
}

func (p FloorPlan) Floors() []Floor {
	floors := make([]Floor, 0, len(p.floors))

	for _, floor := range p.floors {
		floors = append(floors, Floor{ID: floor.ID, Rooms: slices.Clone(floor.Rooms)})
	}

	return floors
}

func (p FloorPlan) Contains(room int) bool {
	_, ok := p.index[room]

	return ok
}

// FloorOf returns the floor id holding room.
func (p FloorPlan) FloorOf(room int) (string, bool) {
	floor, ok := p.index[room]

	return floor, ok
}

func (p FloorPlan) Len() int {
	return len(p.index)
}
