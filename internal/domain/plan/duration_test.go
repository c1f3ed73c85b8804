package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// =====================================================================
// TestParseDurationUnit_*
// =====================================================================

func TestParseDurationUnit_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  DurationUnit
	}{
		{"day", UnitDay},
		{"week", UnitWeek},
		{"month", UnitMonth},
		{" Month ", UnitMonth},
		{"DAY", UnitDay},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			unit, err := ParseDurationUnit(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, unit)
		})
	}
}

func TestParseDurationUnit_Invalid(t *testing.T) {
	for _, input := range []string{"", "year", "days", "fortnight"} {
		t.Run("invalid_"+input, func(t *testing.T) {
			_, err := ParseDurationUnit(input)
			assert.Error(t, err)
		})
	}
}

// =====================================================================
// TestNewDuration_*
// =====================================================================

func TestNewDuration_RejectsZeroValue(t *testing.T) {
	_, err := NewDuration(0, UnitMonth)
	assert.Error(t, err)

	_, err = NewDuration(-3, UnitDay)
	assert.Error(t, err)
}

func TestNewDuration_RejectsInvalidUnit(t *testing.T) {
	_, err := NewDuration(1, DurationUnit("year"))
	assert.Error(t, err)
}

// =====================================================================
// TestDuration_EndDate_*
// =====================================================================

func TestDuration_EndDate_Days(t *testing.T) {
	d, err := NewDuration(10, UnitDay)
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.March, 11), d.EndDate(date(2024, time.March, 1)))
}

func TestDuration_EndDate_Weeks(t *testing.T) {
	d, err := NewDuration(2, UnitWeek)
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.March, 15), d.EndDate(date(2024, time.March, 1)))
}

func TestDuration_EndDate_Months(t *testing.T) {
	d, err := NewDuration(3, UnitMonth)
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.June, 1), d.EndDate(date(2024, time.March, 1)))
}

// The month rollover rule is AddDate normalization: overflow days spill
// into the following month rather than clamping to its last day.
func TestDuration_EndDate_MonthRollover(t *testing.T) {
	d, err := NewDuration(1, UnitMonth)
	require.NoError(t, err)

	// 2024-01-31 + 1 month = 2024-02-31, normalized to 2024-03-02 (leap year).
	assert.Equal(t, date(2024, time.March, 2), d.EndDate(date(2024, time.January, 31)))

	// Non-leap year: 2023-01-31 + 1 month = 2023-03-03.
	assert.Equal(t, date(2023, time.March, 3), d.EndDate(date(2023, time.January, 31)))
}

func TestDuration_EndDate_YearBoundary(t *testing.T) {
	d, err := NewDuration(2, UnitMonth)
	require.NoError(t, err)

	assert.Equal(t, date(2025, time.January, 15), d.EndDate(date(2024, time.November, 15)))
}

// =====================================================================
// TestDuration_Months_*
// =====================================================================

func TestDuration_Months_Canonicalization(t *testing.T) {
	tests := []struct {
		name  string
		value int
		unit  DurationUnit
		want  int
	}{
		{"1 day rounds up", 1, UnitDay, 1},
		{"29 days round up", 29, UnitDay, 1},
		{"30 days exact", 30, UnitDay, 1},
		{"31 days round up", 31, UnitDay, 2},
		{"60 days exact", 60, UnitDay, 2},
		{"1 week rounds up", 1, UnitWeek, 1},
		{"4 weeks round up", 4, UnitWeek, 1},
		{"5 weeks round up", 5, UnitWeek, 2},
		{"13 weeks", 13, UnitWeek, 4},
		{"1 month", 1, UnitMonth, 1},
		{"12 months", 12, UnitMonth, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDuration(tc.value, tc.unit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.Months())
		})
	}
}

// Months must be monotonically non-decreasing in value for a fixed unit.
func TestDuration_Months_Monotonic(t *testing.T) {
	for _, unit := range []DurationUnit{UnitDay, UnitWeek, UnitMonth} {
		t.Run(unit.String(), func(t *testing.T) {
			prev := 0
			for v := 1; v <= 400; v++ {
				d, err := NewDuration(v, unit)
				require.NoError(t, err)
				months := d.Months()
				assert.GreaterOrEqual(t, months, prev, "value %d", v)
				assert.GreaterOrEqual(t, months, 1, "value %d", v)
				prev = months
			}
		})
	}
}
