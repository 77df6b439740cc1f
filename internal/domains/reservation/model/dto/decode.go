package dto

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	stay "frontdesk/internal/domains/stay/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const (
	ColumnRoom      = "room"
	ColumnCheckIn   = "check_in"
	ColumnCheckOut  = "check_out"
	ColumnPartySize = "party_size"
	ColumnName      = "name"
	ColumnAge       = "age"
	ColumnGroupKey  = "group_key"
	ColumnServices  = "services"
	ColumnNotes     = "notes"
)

var requiredColumns = []string{ColumnRoom, ColumnCheckIn, ColumnCheckOut}

// FormatOf picks the decoder from a file name extension.
func FormatOf(fileName string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), ".")) {
	case string(FormatCSV):
		return FormatCSV, nil
	case string(FormatXLSX):
		return FormatXLSX, nil
	default:
		return "", failure.Validation("unsupported reservation file %q, expected .csv or .xlsx", fileName)
	}
}

// Decode reads reservation rows. Dates in layout are rewritten to the canonical layout,
// anything else is kept verbatim. A bad room number rejects the whole file.
func Decode(format Format, src io.Reader, layout string) ([]stay.StayRecord, error) {
	var (
		rows [][]string
		err  error
	)

	switch format {
	case FormatCSV:
		rows, err = readCSV(src)
	case FormatXLSX:
		rows, err = readXLSX(src)
	default:
		return nil, failure.Validation("unsupported reservation format %q", format)
	}

	if err != nil {
		return nil, err
	}

	return DecodeRows(rows, layout)
}

func readCSV(src io.Reader) ([][]string, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, failure.Validation("malformed csv at line %d: %s", parseErr.Line, parseErr.Err)
		}

		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return rows, nil
}

func readXLSX(src io.Reader) ([][]string, error) {
	file, err := excelize.OpenReader(src)
	if err != nil {
		return nil, failure.Validation("malformed xlsx: %s", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, failure.Validation("xlsx has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx rows: %w", err)
	}

	return rows, nil
}

// DecodeRows maps a header row plus data rows onto stay records.
func DecodeRows(rows [][]string, layout string) ([]stay.StayRecord, error) {
	if len(rows) == 0 {
		return nil, failure.Validation("reservation file is empty")
	}

	index := map[string]int{}
	for i, column := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(column))] = i
	}

	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, failure.Validation("reservation file has no %q column", column)
		}
	}

	records := make([]stay.StayRecord, 0, len(rows)-1)

	for i, row := range rows[1:] {
		line := i + 2
		cell := func(column string) string {
			pos, ok := index[column]
			if !ok || pos >= len(row) {
				return constant.Empty
			}

			return strings.TrimSpace(row[pos])
		}

		if isBlank(row) {
			continue
		}

		room, err := strconv.Atoi(cell(ColumnRoom))
		if err != nil {
			return nil, failure.Validation("line %d: room %q is not a number", line, cell(ColumnRoom))
		}

		records = append(records, stay.StayRecord{
			ID:        uuid.NewString(),
			Room:      room,
			CheckIn:   normalizeDate(cell(ColumnCheckIn), layout),
			CheckOut:  normalizeDate(cell(ColumnCheckOut), layout),
			Name:      cell(ColumnName),
			Age:       atoiOr(cell(ColumnAge), 0),
			PartySize: max(atoiOr(cell(ColumnPartySize), 1), 1),
			GroupKey:  cell(ColumnGroupKey),
			Services:  cell(ColumnServices),
			Notes:     cell(ColumnNotes),
		})
	}

	return records, nil
}

// ParseDate reads a date typed in layout, falling back to the canonical layout.
func ParseDate(value, layout string) (time.Time, bool) {
	for _, candidate := range []string{layout, constant.DateLayout} {
		if candidate == constant.Empty {
			continue
		}

		if date, err := time.Parse(candidate, strings.TrimSpace(value)); err == nil {
			return date, true
		}
	}

	return time.Time{}, false
}

func normalizeDate(value, layout string) string {
	if date, ok := ParseDate(value, layout); ok {
		return date.Format(constant.DateLayout)
	}

	return value
}

func atoiOr(value string, fallback int) int {
	number, err := strconv.Atoi(value)
	if err != nil || number < 0 {
		return fallback
	}

	return number
}

func isBlank(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != constant.Empty {
			return false
		}
	}

	return true
}
