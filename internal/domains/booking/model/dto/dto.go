package dto

import (
	"fmt"
	"strings"
	"time"

	"frontdesk/config"
	stay "frontdesk/internal/domains/stay/model"
	"frontdesk/shared/constant"

	"github.com/google/uuid"
)

const (
	DefaultWalkInName = "Walk-in guest"
	voucherPrefix     = "WALK"
)

type WalkInRequest struct {
	Room      int    `json:"room"       validate:"required"`
	Name      string `json:"name"       validate:"omitempty,min=2,max=100"`
	PartySize int    `json:"party_size" validate:"omitempty,gte=1"`
	Services  string `json:"services"   validate:"omitempty,max=100"`
	Nights    int    `json:"nights"     validate:"omitempty,gte=1"`
	Date      string `json:"date"       validate:"omitempty,datetime=2006-01-02"`
}

// WithDefaults fills every omitted field with the front desk defaults.
func (r WalkInRequest) WithDefaults(cfg *config.Config) WalkInRequest {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		r.Name = DefaultWalkInName
	}

	if r.PartySize == 0 {
		r.PartySize = 1
	}

	r.Services = strings.TrimSpace(r.Services)
	if r.Services == "" {
		r.Services = cfg.Hotel.DefaultServices
	}

	if r.Nights == 0 {
		r.Nights = 1
	}

	return r
}

// Voucher is the group key of a walk-in, WALK-<room>-<ddmmyyyy>.
func Voucher(room int, checkIn time.Time) string {
	return fmt.Sprintf("%s-%d-%s", voucherPrefix, room, checkIn.Format(constant.VoucherLayout))
}

func (r WalkInRequest) ToModel(checkIn, checkOut time.Time) stay.StayRecord {
	return stay.StayRecord{
		ID:        uuid.NewString(),
		Room:      r.Room,
		CheckIn:   checkIn.Format(constant.DateLayout),
		CheckOut:  checkOut.Format(constant.DateLayout),
		Name:      r.Name,
		PartySize: r.PartySize,
		GroupKey:  Voucher(r.Room, checkIn),
		Services:  r.Services,
	}
}

type StayResponse struct {
	ID        string `json:"id"`
	Room      int    `json:"room"`
	Name      string `json:"name"`
	PartySize int    `json:"party_size"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Services  string `json:"services"`
	GroupKey  string `json:"group_key"`
}

func (s *StayResponse) FromModel(record stay.StayRecord) {
	s.ID = record.ID
	s.Room = record.Room
	s.Name = record.Name
	s.PartySize = record.PartySize
	s.CheckIn = record.CheckIn
	s.CheckOut = record.CheckOut
	s.Services = record.Services
	s.GroupKey = record.GroupKey
}
