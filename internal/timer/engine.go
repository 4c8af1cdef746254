package timer

import (
	"fmt"
	"math"

	"calc555/internal/capacitor"
	"calc555/internal/domain"
)

const (
	minDutyFraction = 0.5
	maxDutyFraction = 1.0
)

// Engine derives 555 timing from a capacitor and a resistor pair.
type Engine struct {
	c capacitor.Capacitor

	period    float64 // seconds
	hasPeriod bool
	duty      float64 // fraction
	hasDuty   bool

	// pair is nil until resistors are set or derived. The value it points to
	// is never modified; a new pair replaces it.
	pair *domain.ResistorPair
	// derived is set while pair comes from the period and duty ratio.
	derived bool
}

// New returns an engine for the given capacitor.
func New(c capacitor.Capacitor) (*Engine, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("new engine: %w", domain.ErrInvalidCapacitor)
	}
	return &Engine{c: c}, nil
}

// Capacitor returns the capacitor in use.
func (e *Engine) Capacitor() capacitor.Capacitor { return e.c }

// SetCapacitance replaces the capacitor. A value below 1 is taken as Farads,
// anything else as microfarads. A pair derived from a period and duty ratio is
// recomputed for the new capacitor; an explicit pair is kept.
func (e *Engine) SetCapacitance(value float64) error {
	c, err := capacitor.FromAbsolute(value)
	if err != nil {
		return err
	}
	e.c = c
	if e.derived {
		e.recomputeResistors()
	}
	return nil
}

// SetResistors stores an explicit pair. On error the previous pair is kept.
func (e *Engine) SetResistors(r1, r2 float64) error {
	if !validResistance(r1) || !validResistance(r2) {
		return fmt.Errorf("%w: R1=%g R2=%g", domain.ErrInvalidResistance, r1, r2)
	}
	e.pair = &domain.ResistorPair{R1: r1, R2: r2}
	e.derived = false
	return nil
}

// SetDutyRatio sets the duty ratio. A value below 1 is a fraction, anything
// else a percentage.
func (e *Engine) SetDutyRatio(value float64) error {
	duty := value
	if value >= 1.0 {
		duty = value / 100.0
	}
	if math.IsNaN(duty) || duty < minDutyFraction || duty > maxDutyFraction {
		return fmt.Errorf("%w: got %g", domain.ErrInvalidDutyRatio, value)
	}

	e.duty, e.hasDuty = duty, true
	if e.hasPeriod {
		e.recomputeResistors()
	}
	return nil
}

// SetPeriod sets the period. A value below 1 is seconds; anything else is
// milliseconds, so 0.05 and 50 both mean 50ms and a period of 1.1s is
// entered as 1100.
func (e *Engine) SetPeriod(value float64) error {
	if !(value > 0) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: got %g", domain.ErrInvalidPeriod, value)
	}
	seconds := value
	if value >= 1.0 {
		seconds = value / 1000.0
	}
	e.storePeriod(seconds)
	return nil
}

// SetFrequencyHz sets the period to 1/hz seconds.
func (e *Engine) SetFrequencyHz(hz float64) error {
	if hz == 0 {
		return domain.ErrDivisionByZero
	}
	seconds := 1.0 / hz
	if !(seconds > 0) || math.IsInf(seconds, 0) {
		return fmt.Errorf("%w: frequency %g Hz", domain.ErrInvalidPeriod, hz)
	}
	e.storePeriod(seconds)
	return nil
}

func (e *Engine) storePeriod(seconds float64) {
	e.period, e.hasPeriod = seconds, true
	if e.hasDuty {
		e.recomputeResistors()
	}
}

// recomputeResistors derives R1 and R2 from the period and duty ratio.
func (e *Engine) recomputeResistors() {
	cf := e.c.CFactor()
	highTime := e.period * e.duty
	lowTime := e.period - highTime

	r2 := lowTime / cf
	r1 := highTime/cf - r2
	if r1 < 0 {
		// rounding at a duty ratio of exactly 50%
		r1 = 0
	}
	e.pair = &domain.ResistorPair{R1: r1, R2: r2}
	e.derived = true
}

// Resistors returns the current pair.
func (e *Engine) Resistors() (domain.ResistorPair, error) {
	if e.pair == nil {
		return domain.ResistorPair{}, domain.ErrResistorsNotSet
	}
	return *e.pair, nil
}

// R1 returns the R1 value in ohms.
func (e *Engine) R1() (float64, error) {
	p, err := e.Resistors()
	return p.R1, err
}

// R2 returns the R2 value in ohms.
func (e *Engine) R2() (float64, error) {
	p, err := e.Resistors()
	return p.R2, err
}

// Th returns the high time in seconds.
func (e *Engine) Th() (float64, error) {
	p, err := e.Resistors()
	if err != nil {
		return 0, err
	}
	return e.c.CFactor() * p.Sum(), nil
}

// Tl returns the low time in seconds.
func (e *Engine) Tl() (float64, error) {
	p, err := e.Resistors()
	if err != nil {
		return 0, err
	}
	return e.c.CFactor() * p.R2, nil
}

// ThMs returns the high time in milliseconds.
func (e *Engine) ThMs() (float64, error) { return scale(e.Th, 1000.0) }

// TlMs returns the low time in milliseconds.
func (e *Engine) TlMs() (float64, error) { return scale(e.Tl, 1000.0) }

// Period returns th + tl in seconds.
func (e *Engine) Period() (float64, error) {
	th, err := e.Th()
	if err != nil {
		return 0, err
	}
	tl, err := e.Tl()
	if err != nil {
		return 0, err
	}
	return th + tl, nil
}

// PeriodMs returns the period in milliseconds.
func (e *Engine) PeriodMs() (float64, error) { return scale(e.Period, 1000.0) }

// FrequencyHz returns 1 / period.
func (e *Engine) FrequencyHz() (float64, error) {
	p, err := e.Period()
	if err != nil {
		return 0, err
	}
	return 1.0 / p, nil
}

// DutyRatio returns th / (th + tl) as a fraction.
func (e *Engine) DutyRatio() (float64, error) {
	th, err := e.Th()
	if err != nil {
		return 0, err
	}
	p, err := e.Period()
	if err != nil {
		return 0, err
	}
	return th / p, nil
}

// DutyRatioPercent returns the duty ratio as a percentage.
func (e *Engine) DutyRatioPercent() (float64, error) { return scale(e.DutyRatio, 100.0) }

// Timing returns every derived value in one snapshot.
func (e *Engine) Timing() (domain.Timing, error) {
	p, err := e.Resistors()
	if err != nil {
		return domain.Timing{}, err
	}
	cf := e.c.CFactor()
	th := cf * p.Sum()
	tl := cf * p.R2
	period := th + tl
	return domain.Timing{
		Capacitance: e.c.Farads(),
		Resistors:   p,
		Th:          th,
		Tl:          tl,
		Period:      period,
		Frequency:   1.0 / period,
		DutyRatio:   th / period,
	}, nil
}

func scale(get func() (float64, error), factor float64) (float64, error) {
	v, err := get()
	if err != nil {
		return 0, err
	}
	return v * factor, nil
}

func validResistance(r float64) bool {
	return r > 0 && !math.IsInf(r, 0)
}
