package plan

import (
	"fmt"
	"strings"
	"time"
)

// DurationUnit is the unit a plan duration was entered in.
type DurationUnit string

const (
	UnitDay   DurationUnit = "day"
	UnitWeek  DurationUnit = "week"
	UnitMonth DurationUnit = "month"
)

var validDurationUnits = map[DurationUnit]bool{
	UnitDay:   true,
	UnitWeek:  true,
	UnitMonth: true,
}

// ParseDurationUnit normalizes and validates a duration unit string. Invalid
// units are rejected here, at the boundary; the arithmetic below assumes a
// valid unit.
func ParseDurationUnit(value string) (DurationUnit, error) {
	unit := DurationUnit(strings.ToLower(strings.TrimSpace(value)))
	if !validDurationUnits[unit] {
		return "", fmt.Errorf("invalid duration unit: %s", value)
	}
	return unit, nil
}

func (u DurationUnit) String() string {
	return string(u)
}

func (u DurationUnit) IsValid() bool {
	return validDurationUnits[u]
}

// Duration is a plan duration as entered: a positive value and a unit.
// Storage always canonicalizes to whole months via Months; the original
// unit is not preserved after save.
type Duration struct {
	value int
	unit  DurationUnit
}

// NewDuration creates a duration. Value must be at least 1.
func NewDuration(value int, unit DurationUnit) (Duration, error) {
	if value < 1 {
		return Duration{}, fmt.Errorf("duration value must be at least 1, got %d", value)
	}
	if !unit.IsValid() {
		return Duration{}, fmt.Errorf("invalid duration unit: %s", unit)
	}
	return Duration{value: value, unit: unit}, nil
}

// MonthsDuration wraps an already-canonical month count, as loaded from
// storage.
func MonthsDuration(months int) (Duration, error) {
	return NewDuration(months, UnitMonth)
}

func (d Duration) Value() int {
	return d.value
}

func (d Duration) Unit() DurationUnit {
	return d.unit
}

// EndDate computes the concrete end date for a membership starting at start.
// Month arithmetic uses time.Time.AddDate, which normalizes overflow into
// the following month: 2024-01-31 plus one month is 2024-03-02. This
// rollover rule is deliberate and covered by tests.
func (d Duration) EndDate(start time.Time) time.Time {
	switch d.unit {
	case UnitDay:
		return start.AddDate(0, 0, d.value)
	case UnitWeek:
		return start.AddDate(0, 0, d.value*7)
	default:
		return start.AddDate(0, d.value, 0)
	}
}

// Months converts the duration to the canonical whole-month count used for
// storage. Day and week values are rounded up against a 30-day month, so
// the conversion is approximate and lossy; round-trips through storage are
// not exact for day or week inputs.
func (d Duration) Months() int {
	switch d.unit {
	case UnitDay:
		return (d.value + 29) / 30
	case UnitWeek:
		return (d.value*7 + 29) / 30
	default:
		return d.value
	}
}

func (d Duration) String() string {
	return fmt.Sprintf("%d %s", d.value, d.unit)
}
