package report

import (
	"bytes"
	"fmt"

	"frontdesk/internal/domains/occupancy/engine"
	"frontdesk/shared/constant"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName   = "Occupancy"
	statsSheet  = "Summary"
	defaultName = "Sheet1"
)

var DashboardHeader = []string{
	"Room",
	"Floor",
	"Status",
	"Occupant",
	"Party",
	"Check-in",
	"Check-out",
	"Charges",
	"Next reservation",
}

var columnWidths = []float64{8, 8, 24, 30, 8, 14, 14, 12, 18}

// FileName names the export of a given day.
func FileName(dashboard engine.Dashboard) string {
	return fmt.Sprintf("occupancy-%s.xlsx", dashboard.Date.Format(constant.DateLayout))
}

// Dashboard renders the room status map and its summary as an xlsx workbook.
func Dashboard(dashboard engine.Dashboard) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()

		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := f.DeleteSheet(defaultName); err != nil {
		f.Close()

		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()

		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeRow(f, sheetName, 1, toAny(DashboardHeader), headerStyle); err != nil {
		f.Close()

		return nil, err
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()

			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}

		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			f.Close()

			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, room := range dashboard.Rooms {
		if err := writeRow(f, sheetName, i+2, roomRow(room), 0); err != nil {
			f.Close()

			return nil, err
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()

		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	if err := writeSummary(f, dashboard, headerStyle); err != nil {
		f.Close()

		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()

		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}

	return buf.Bytes(), nil
}

func roomRow(room engine.RoomView) []any {
	row := []any{room.Room, room.Floor, string(room.Status), "", "", "", "", room.Charges, ""}

	if room.Occupant != nil {
		row[3] = room.Occupant.Name
		row[4] = room.Occupant.PartySize
		row[5] = room.Occupant.CheckIn
		row[6] = room.Occupant.CheckOut
	}

	if room.Reservation != nil {
		row[8] = room.Reservation.CheckIn
	}

	return row
}

func writeSummary(f *excelize.File, dashboard engine.Dashboard, headerStyle int) error {
	if _, err := f.NewSheet(statsSheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	stats := dashboard.Stats
	rows := [][]any{
		{"Date", dashboard.Date.Format(constant.DateLayout)},
		{"Total rooms", stats.TotalRooms},
		{"Occupied", stats.Occupied},
		{"With charges", stats.WithCharges},
		{"Without charges", stats.WithoutCharges},
		{"Checkout today", stats.CheckoutToday},
		{"Reserved", stats.Reserved},
		{"Vacant", stats.Vacant},
		{"Double bookings", len(dashboard.Violations)},
	}

	for i, row := range rows {
		if err := writeRow(f, statsSheet, i+1, row, 0); err != nil {
			return err
		}
	}

	cell, _ := excelize.CoordinatesToCellName(1, len(rows))
	if err := f.SetCellStyle(statsSheet, "A1", cell, headerStyle); err != nil {
		return fmt.Errorf("failed to set summary style: %w", err)
	}

	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any, style int) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}

		if value == "" {
			continue
		}

		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}

		if style != 0 {
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return fmt.Errorf("failed to set cell style %s: %w", cell, err)
			}
		}
	}

	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}

	return out
}
