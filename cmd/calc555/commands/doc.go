// Package commands defines the calc555 CLI and wires dependencies for subcommands.
//
// Commands
//
//   - resistors    Timing from explicit R1 and R2
//   - period       R1 and R2 from a period and duty ratio
//   - frequency    R1 and R2 from a frequency and duty ratio
//   - plot         Draw the output and capacitor waveforms
//   - interactive  Menu-driven calculator
//   - config       Show or write the configuration file
//
// # Implementation
//
// The root command sets up logging, loads the configuration and builds the
// app before any subcommand runs, so handlers share one calculator service
// and one set of renderers.
package commands
