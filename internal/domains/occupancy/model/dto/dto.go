package dto

import (
	"frontdesk/internal/domains/occupancy/engine"
	"frontdesk/shared/constant"
)

type DashboardResponse struct {
	Date         string                  `json:"date"`
	Stats        engine.Stats            `json:"stats"`
	Rooms        []engine.RoomView       `json:"rooms"`
	Active       map[int]engine.Occupant `json:"active"`
	Future       map[int]engine.Occupant `json:"future"`
	Violations   []engine.Violation      `json:"violations"`
	UnknownRooms []int                   `json:"unknown_rooms"`
}

func (r *DashboardResponse) FromDashboard(dashboard engine.Dashboard) {
	r.Date = dashboard.Date.Format(constant.DateLayout)
	r.Stats = dashboard.Stats
	r.Rooms = dashboard.Rooms
	r.Active = dashboard.Active
	r.Future = dashboard.Future
	r.Violations = dashboard.Violations
	r.UnknownRooms = dashboard.UnknownRooms
}

type AvailableRoomsResponse struct {
	Date  string `json:"date"`
	Rooms []int  `json:"rooms"`
}

type MaxNightsResponse struct {
	Room      int    `json:"room"`
	Date      string `json:"date"`
	MaxNights int    `json:"max_nights"`
	// Unlimited is true when no future reservation bounds the stay.
	Unlimited bool `json:"unlimited"`
}

type ChargesResponse struct {
	Room  int     `json:"room"`
	Total float64 `json:"total"`
	Lines int     `json:"lines"`
}

type ValidateStayRequest struct {
	Room     int    `json:"room"      validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Date     string `json:"date"      validate:"omitempty,datetime=2006-01-02"`
}

type ValidateStayResponse struct {
	Room      int    `json:"room"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}
