package domain

import (
	interfaces "calc555/internal/domain/interfaces"
	types "calc555/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ResistorPair = types.ResistorPair
	Timing       = types.Timing
	Result       = types.Result
	Warning      = types.Warning
	WarningCode  = types.WarningCode
)

// Warning codes re-exported from the types subpackage.
const (
	WarningTooLow            = types.WarningTooLow
	WarningTooHigh           = types.WarningTooHigh
	WarningSumTooHigh        = types.WarningSumTooHigh
	WarningIncreaseCapacitor = types.WarningIncreaseCapacitor
	WarningDecreaseCapacitor = types.WarningDecreaseCapacitor
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Renderer          = interfaces.Renderer
	CalculatorService = interfaces.CalculatorService
)
