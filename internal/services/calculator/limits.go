package calculator

import (
	"fmt"

	"calc555/internal/domain"
)

// Limits bound what a user may enter. Period bounds apply to the raw entry,
// before the engine decides between seconds and milliseconds. Duty bounds are
// percentages.
type Limits struct {
	PeriodMin    float64 `json:"period_min"`
	PeriodMax    float64 `json:"period_max"`
	FrequencyMin float64 `json:"frequency_min"`
	FrequencyMax float64 `json:"frequency_max"`
	DutyMin      float64 `json:"duty_min"`
	DutyMax      float64 `json:"duty_max"`
}

// DefaultLimits allows 10µs to one minute, 0.1 Hz to 300 kHz and a duty
// ratio of 50% to 100%.
func DefaultLimits() Limits {
	return Limits{
		PeriodMin:    0.00001,
		PeriodMax:    60_000,
		FrequencyMin: 0.1,
		FrequencyMax: 300_000,
		DutyMin:      50,
		DutyMax:      100,
	}
}

func (l Limits) checkPeriod(v float64) error {
	return between("period", v, l.PeriodMin, l.PeriodMax)
}

func (l Limits) checkFrequency(hz float64) error {
	return between("frequency", hz, l.FrequencyMin, l.FrequencyMax)
}

// checkDuty accepts either a fraction (below 1) or a percentage.
func (l Limits) checkDuty(v float64) error {
	if v < 1.0 {
		return between("duty ratio", v, l.DutyMin/100.0, l.DutyMax/100.0)
	}
	return between("duty ratio", v, l.DutyMin, l.DutyMax)
}

func between(name string, v, lo, hi float64) error {
	if v >= lo && v <= hi {
		return nil
	}
	return fmt.Errorf("%w: the %s must be between %g and %g, got %g", domain.ErrOutOfRange, name, lo, hi, v)
}
