package report_test

import (
	"bytes"
	"testing"
	"time"

	"frontdesk/internal/domains/occupancy/engine"
	"frontdesk/internal/domains/occupancy/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDashboard(t *testing.T) {
	dashboard := engine.Dashboard{
		Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Rooms: []engine.RoomView{
			{
				Room:     101,
				Floor:    "1",
				Status:   engine.StatusOccupiedWithCharges,
				Occupant: &engine.Occupant{Name: "Ana Diaz", PartySize: 2, CheckIn: "2026-03-01", CheckOut: "2026-03-08"},
				Charges:  12.5,
			},
			{
				Room:        102,
				Floor:       "1",
				Status:      engine.StatusReserved,
				Reservation: &engine.Occupant{Name: "Luis", CheckIn: "2026-03-10"},
			},
		},
		Stats: engine.Stats{TotalRooms: 2, Occupied: 1, WithCharges: 1, Reserved: 1},
	}

	content, err := report.Dashboard(dashboard)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)

	defer f.Close()

	rows, err := f.GetRows("Occupancy")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, report.DashboardHeader, rows[0])
	assert.Equal(t, []string{"101", "1", "occupied_with_charges", "Ana Diaz", "2", "2026-03-01", "2026-03-08", "12.5"}, rows[1])
	assert.Equal(t, "2026-03-10", rows[2][8])

	total, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", total)

	assert.Equal(t, "occupancy-2026-03-05.xlsx", report.FileName(dashboard))
}
