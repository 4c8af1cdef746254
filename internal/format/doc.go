// Package format turns engine values into display text.
//
// Resistances are scaled to Ω, kΩ or MΩ; frequencies switch to kHz (with
// times in µs) above 999 Hz. CheckRange reports resistors outside the
// recommended 150 Ω to 1 MΩ band together with at most one suggestion per
// capacitor change.
//
// Everything here is a pure function of its arguments.
package format
