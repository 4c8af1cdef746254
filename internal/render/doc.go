// Package render implements domain.Renderer for the calculator's outputs.
//
//   - Text writes the result lines with no styling.
//   - Styled highlights values and warnings with lipgloss, in the colours the
//     original terminal calculator used (yellow values, cyan title, red
//     warnings).
//   - Plot draws the output and capacitor voltage waveforms with gonum/plot.
//
// Renderers read a domain.Result only; they never touch an engine.
package render
