package model

const (
	TableName   = "consumptions"
	EntitasName = "consumption"
)

// Consumption is one charge line keyed by room. Only the room key is ever rewritten.
type Consumption struct {
	ID          string  `json:"id"          db:"id"`
	Position    int     `json:"-"           db:"position"`
	Room        int     `json:"room"        db:"room_number"`
	Amount      float64 `json:"amount"      db:"amount"`
	Description string  `json:"description" db:"description"`
	RecordedAt  string  `json:"recorded_at" db:"recorded_at"`
}
