package types

// WarningCode classifies a Warning.
type WarningCode string

const (
	WarningTooLow            WarningCode = "too-low"
	WarningTooHigh           WarningCode = "too-high"
	WarningSumTooHigh        WarningCode = "sum-too-high"
	WarningIncreaseCapacitor WarningCode = "increase-capacitor"
	WarningDecreaseCapacitor WarningCode = "decrease-capacitor"
)

// String returns the string form of the code.
func (c WarningCode) String() string { return string(c) }

// IsRemedy reports whether the code is a suggestion rather than a finding.
func (c WarningCode) IsRemedy() bool {
	return c == WarningIncreaseCapacitor || c == WarningDecreaseCapacitor
}

// Warning flags a resistor value outside the recommended band, or suggests a
// capacitor change that would bring it back. Resistor is "R1", "R2", "R1+R2",
// or empty for remedies.
type Warning struct {
	Code     WarningCode
	Resistor string
	Message  string
}

// String returns the warning message.
func (w Warning) String() string { return w.Message }
