// Package calculator validates user entries and runs them through the timing
// engine.
//
// Entry limits (period, frequency and duty ratio ranges) belong to the
// presentation side and are configurable; the engine applies its own rules on
// top. A Session keeps the current capacitor and last result for the
// interactive calculator.
package calculator
