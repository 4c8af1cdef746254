package interfaces

import (
	domaintypes "calc555/internal/domain/types"
)

// CalculatorService validates user entries and runs them through a fresh
// timing engine.
type CalculatorService interface {
	FromResistors(capacitor string, r1, r2 float64) (domaintypes.Result, error)
	FromPeriod(capacitor string, period, duty float64) (domaintypes.Result, error)
	FromFrequency(capacitor string, hz, duty float64) (domaintypes.Result, error)
}
