package format

import (
	"fmt"

	"calc555/internal/domain"
)

// Recommended resistor band, exclusive at both ends.
const (
	SafeMin = 150.0
	SafeMax = 1_000_000.0
)

// CheckRange reports resistors outside (SafeMin, SafeMax) and an R1+R2 sum
// above SafeMax. Capacitor suggestions follow the findings, each at most
// once however many findings call for it.
func CheckRange(r1, r2 float64) []domain.Warning {
	var (
		warnings           []domain.Warning
		increase, decrease bool
	)
	show := Default().value

	check := func(name string, ohms float64) {
		switch {
		case ohms <= SafeMin:
			warnings = append(warnings, domain.Warning{
				Code:     domain.WarningTooLow,
				Resistor: name,
				Message:  fmt.Sprintf("%s (%s) is too low, keep it above %s", name, show(ohms), show(SafeMin)),
			})
			decrease = true
		case ohms >= SafeMax:
			warnings = append(warnings, domain.Warning{
				Code:     domain.WarningTooHigh,
				Resistor: name,
				Message:  fmt.Sprintf("%s (%s) is too high, keep it below %s", name, show(ohms), show(SafeMax)),
			})
			increase = true
		}
	}
	check("R1", r1)
	check("R2", r2)

	if sum := r1 + r2; sum > SafeMax {
		warnings = append(warnings, domain.Warning{
			Code:     domain.WarningSumTooHigh,
			Resistor: "R1+R2",
			Message:  fmt.Sprintf("R1 + R2 (%s) is above %s", show(sum), show(SafeMax)),
		})
		increase = true
	}

	// Resistors too high: a larger capacitor brings them down. Too low: a
	// smaller capacitor raises them.
	if increase {
		warnings = append(warnings, domain.Warning{
			Code:    domain.WarningIncreaseCapacitor,
			Message: "Try a larger capacitor",
		})
	}
	if decrease {
		warnings = append(warnings, domain.Warning{
			Code:    domain.WarningDecreaseCapacitor,
			Message: "Try a smaller capacitor",
		})
	}
	return warnings
}
