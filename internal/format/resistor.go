package format

import (
	"fmt"
	"math"
)

const (
	ohmLimit  = 5_000.0
	kiloLimit = 1_000_000.0

	// DefaultLowValueThreshold is the resistance below which values are shown
	// to three places with a warning suffix.
	DefaultLowValueThreshold = 10.0

	lowValueSuffix = " - Warning Low Value"
)

// Formatter renders resistances. A zero LowValueThreshold disables the
// low-value warning suffix.
type Formatter struct {
	LowValueThreshold float64
}

// Default returns a Formatter using DefaultLowValueThreshold.
func Default() Formatter {
	return Formatter{LowValueThreshold: DefaultLowValueThreshold}
}

// Resistance formats ohms:
//
//	below the low threshold  "8.812 Ω - Warning Low Value"
//	below 5 kΩ               "402 Ω"
//	below 1 MΩ               "6.40 kΩ"
//	otherwise                "1.20 MΩ"
func (f Formatter) Resistance(ohms float64) string {
	if f.low(ohms) {
		return f.value(ohms) + lowValueSuffix
	}
	return f.value(ohms)
}

func (f Formatter) low(ohms float64) bool {
	return f.LowValueThreshold > 0 && ohms < f.LowValueThreshold
}

// value is Resistance without the low-value suffix.
func (f Formatter) value(ohms float64) string {
	switch {
	case f.low(ohms):
		return fmt.Sprintf("%.3f Ω", ohms)
	case ohms < ohmLimit:
		return fmt.Sprintf("%.0f Ω", math.Round(ohms))
	case ohms < kiloLimit:
		return fmt.Sprintf("%.2f kΩ", ohms/1_000.0)
	default:
		return fmt.Sprintf("%.2f MΩ", ohms/1_000_000.0)
	}
}

// Resistance formats ohms with the default Formatter.
func Resistance(ohms float64) string { return Default().Resistance(ohms) }
