package domain

import "errors"

// Errors raised by the capacitor parser and the timing engine. Callers match
// them with errors.Is; the returned errors usually wrap them with the
// offending value.
var (
	// ErrParse is returned when capacitance text holds no digit group.
	ErrParse = errors.New("cannot parse capacitance")

	// ErrInvalidUnit is returned for a unit outside p, n, u, µ (optionally
	// followed by f or F).
	ErrInvalidUnit = errors.New("bad capacitance unit")

	// ErrInvalidCapacitor is returned for a missing or non-positive capacitance.
	ErrInvalidCapacitor = errors.New("capacitance must be greater than zero")

	// ErrInvalidResistance is returned when a resistor is not greater than zero.
	ErrInvalidResistance = errors.New("resistance must be greater than zero")

	// ErrInvalidDutyRatio is returned when a duty ratio falls outside 50% to 100%.
	ErrInvalidDutyRatio = errors.New("duty ratio must be from 50% to 100%")

	// ErrInvalidPeriod is returned for a non-positive period.
	ErrInvalidPeriod = errors.New("period must be greater than zero")

	// ErrDivisionByZero is returned for a zero frequency.
	ErrDivisionByZero = errors.New("frequency cannot be zero")

	// ErrResistorsNotSet is returned when a derived value is read before R1
	// and R2 are known.
	ErrResistorsNotSet = errors.New("R1 and R2 must be set")

	// ErrOutOfRange is returned by the calculator service when an entry falls
	// outside the configured input limits.
	ErrOutOfRange = errors.New("value out of range")
)
