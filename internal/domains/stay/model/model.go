package model

import "strings"

const (
	TableName   = "stays"
	EntitasName = "stay"

	FieldPosition = "position"

	// NoteSeparator joins successive notes on the same record.
	NoteSeparator = " | "
)

// StayRecord is one person's, or one booking line's, assignment to a room for [CheckIn, CheckOut).
// Dates are kept as text in the canonical layout; malformed values survive a read/write cycle untouched.
type StayRecord struct {
	ID        string `json:"id"         db:"id"`
	Position  int    `json:"-"          db:"position"`
	Room      int    `json:"room"       db:"room_number"`
	CheckIn   string `json:"check_in"   db:"check_in"`
	CheckOut  string `json:"check_out"  db:"check_out"`
	Name      string `json:"name"       db:"occupant_name"`
	Age       int    `json:"age"        db:"age"`
	PartySize int    `json:"party_size" db:"party_size"`
	GroupKey  string `json:"group_key"  db:"group_key"`
	Services  string `json:"services"   db:"services"`
	Notes     string `json:"notes"      db:"notes"`
}

// AppendNote adds note after any existing text, never replacing it.
func (s *StayRecord) AppendNote(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}

	if strings.TrimSpace(s.Notes) == "" {
		s.Notes = note

		return
	}

	s.Notes = s.Notes + NoteSeparator + note
}
