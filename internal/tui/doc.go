// Package tui is the interactive calculator: a bubbletea program that asks
// for a capacitor, then loops over a menu of calculations.
//
//	P  period (ms or s) and duty ratio
//	F  frequency (Hz) and duty ratio
//	R  explicit R1 and R2
//	C  change capacitor
//	Q  quit
//
// All calculation goes through a calculator.Session; the model only collects
// entries and shows what the session returns.
package tui
