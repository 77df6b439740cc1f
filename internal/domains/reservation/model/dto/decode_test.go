package dto_test

import (
	"bytes"
	"strings"
	"testing"

	"frontdesk/internal/domains/reservation/model/dto"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const layout = "02/01/2006"

func TestFormatOf(t *testing.T) {
	format, err := dto.FormatOf("march.CSV")
	require.NoError(t, err)
	assert.Equal(t, dto.FormatCSV, format)

	format, err = dto.FormatOf("/tmp/march.xlsx")
	require.NoError(t, err)
	assert.Equal(t, dto.FormatXLSX, format)

	_, err = dto.FormatOf("march.json")
	assert.True(t, failure.IsValidation(err))
}

func TestDecode_CSV(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError string
		check       func(t *testing.T, input string)
	}{
		{
			name: "full header",
			input: "room,check_in,check_out,party_size,name,age,group_key,services,notes\n" +
				"101,10/03/2026,15/03/2026,2,Ana Diaz,41,V9,BREAKFAST,vip\n" +
				"102,2026-03-10,2026-03-15,x,Luis Diaz,old,V9,,\n" +
				"\n" +
				"103,soon,later,1,Eva,7,,,\n",
		},
		{
			name:        "missing required column",
			input:       "room,check_in,name\n101,10/03/2026,Ana\n",
			expectError: `reservation file has no "check_out" column`,
		},
		{
			name:        "bad room",
			input:       "room,check_in,check_out\n101,10/03/2026,15/03/2026\nabc,10/03/2026,15/03/2026\n",
			expectError: `line 3: room "abc" is not a number`,
		},
		{
			name:        "empty file",
			input:       "",
			expectError: "reservation file is empty",
		},
		{
			name:        "unterminated quote",
			input:       "room,check_in,check_out\n\"101,10/03/2026,15/03/2026\n",
			expectError: "malformed csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := dto.Decode(dto.FormatCSV, strings.NewReader(tt.input), layout)

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.True(t, failure.IsValidation(err))

				return
			}

			require.NoError(t, err)
			require.Len(t, records, 3)

			assert.Equal(t, 101, records[0].Room)
			assert.Equal(t, "2026-03-10", records[0].CheckIn)
			assert.Equal(t, "2026-03-15", records[0].CheckOut)
			assert.Equal(t, 2, records[0].PartySize)
			assert.Equal(t, 41, records[0].Age)
			assert.Equal(t, "V9", records[0].GroupKey)
			assert.Equal(t, "vip", records[0].Notes)
			assert.NotEmpty(t, records[0].ID)

			assert.Equal(t, "2026-03-10", records[1].CheckIn, "canonical dates are accepted")
			assert.Equal(t, 1, records[1].PartySize)
			assert.Equal(t, 0, records[1].Age)

			assert.Equal(t, "soon", records[2].CheckIn, "unparseable dates are kept verbatim")
			assert.Equal(t, "later", records[2].CheckOut)
		})
	}
}

func TestDecode_XLSX(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]any{
		{"Room", "Check_In", "Check_Out", "Name"},
		{"110", "12/03/2026", "14/03/2026", "Ana Diaz"},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	records, err := dto.Decode(dto.FormatXLSX, &buf, layout)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 110, records[0].Room)
	assert.Equal(t, "2026-03-12", records[0].CheckIn)
	assert.Equal(t, "Ana Diaz", records[0].Name)
	assert.Equal(t, 1, records[0].PartySize)

	_, err = dto.Decode(dto.FormatXLSX, strings.NewReader("not a workbook"), layout)
	assert.True(t, failure.IsValidation(err))
}

func TestParseDate(t *testing.T) {
	date, ok := dto.ParseDate("05/03/2026", layout)
	require.True(t, ok)
	assert.Equal(t, "2026-03-05", date.Format("2006-01-02"))

	_, ok = dto.ParseDate("2026-03-05", layout)
	assert.True(t, ok)

	_, ok = dto.ParseDate("5 March", layout)
	assert.False(t, ok)
}
