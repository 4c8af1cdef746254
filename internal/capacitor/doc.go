// Package capacitor parses capacitance entries into Farads.
//
// Entries look like "22", "22n", "47pF" or "10 µF": a number, optional
// whitespace and an optional decade letter (p, n, u or µ) optionally followed
// by f or F. A bare number is taken as microfarads.
//
// The package is the only place that knows about pico, nano and micro
// scaling. The timing engine works in Farads throughout.
package capacitor
