package types

// ResistorPair is the R1/R2 network of an astable 555 circuit, in ohms.
//
// A pair is a value: engines replace it wholesale and never update one
// resistor on its own.
type ResistorPair struct {
	R1 float64
	R2 float64
}

// Sum returns R1 + R2, the resistance the capacitor charges through.
func (p ResistorPair) Sum() float64 { return p.R1 + p.R2 }

// Timing is a snapshot of every quantity derived from a capacitor and a
// resistor pair. Times are in seconds, frequency in hertz and the duty ratio
// is a fraction.
type Timing struct {
	Capacitance float64
	Resistors   ResistorPair
	Th          float64
	Tl          float64
	Period      float64
	Frequency   float64
	DutyRatio   float64
}

// ThMs returns the high time in milliseconds.
func (t Timing) ThMs() float64 { return t.Th * 1000.0 }

// TlMs returns the low time in milliseconds.
func (t Timing) TlMs() float64 { return t.Tl * 1000.0 }

// PeriodMs returns the period in milliseconds.
func (t Timing) PeriodMs() float64 { return t.Period * 1000.0 }

// DutyRatioPercent returns the duty ratio as a percentage.
func (t Timing) DutyRatioPercent() float64 { return t.DutyRatio * 100.0 }

// Result is what a calculation hands to a renderer.
type Result struct {
	Timing   Timing
	Warnings []Warning
}
