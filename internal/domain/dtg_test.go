package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDTG(t *testing.T) {
	got, err := ParseDTG("192359Z AUG 25", DefaultPivotYear)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.August, 19, 23, 59, 0, 0, time.UTC), got)
}

func TestParseDTG_TrimsWhitespace(t *testing.T) {
	got, err := ParseDTG("  010001Z JAN 25 ", 0)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 1, 0, 0, time.UTC), got)
}

func TestParseDTG_PivotWindow(t *testing.T) {
	tests := []struct {
		name string
		dtg  string
		year int
	}{
		{"low years resolve to 2000s", "010000Z JAN 07", 2007},
		{"edge below pivot", "010000Z JAN 79", 2079},
		{"pivot year itself", "010000Z JAN 80", 1980},
		{"high years resolve to 1900s", "010000Z JAN 99", 1999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDTG(tt.dtg, DefaultPivotYear)
			require.NoError(t, err)
			assert.Equal(t, tt.year, got.Year())
		})
	}
}

func TestParseDTG_CustomPivot(t *testing.T) {
	// A 2010 pivot maps "10"-"99" into 2010-2099 and "00"-"09" to 2100s.
	got, err := ParseDTG("010000Z JAN 85", 2010)
	require.NoError(t, err)
	assert.Equal(t, 2085, got.Year())
}

func TestParseDTG_Invalid(t *testing.T) {
	tests := []struct {
		name string
		dtg  string
	}{
		{"unknown month", "192359Z XXX 25"},
		{"hour out of range", "192459Z AUG 25"},
		{"minute out of range", "192360Z AUG 25"},
		{"day zero", "002359Z AUG 25"},
		{"day beyond month", "322359Z AUG 25"},
		{"february 30th", "302359Z FEB 25"},
		{"missing digit", "12359Z AUG 25"},
		{"lowercase month", "192359Z aug 25"},
		{"trailing text", "192359Z AUG 25."},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDTG(tt.dtg, DefaultPivotYear)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDTG)
		})
	}
}
