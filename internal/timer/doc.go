// Package timer is the timing engine for an astable 555 circuit.
//
// An Engine holds a capacitor plus either an explicit resistor pair or a
// period and duty ratio from which the pair is derived. Every other quantity
// (high and low times, period, frequency, duty ratio) is recomputed from the
// capacitor and the pair on each read:
//
//	th = ln(2) * C * (R1 + R2)
//	tl = ln(2) * C * R2
//
// An Engine is not safe for concurrent use. Setting the period or duty ratio
// reads both inputs before replacing the pair, so concurrent setters must be
// serialised by the caller.
package timer
