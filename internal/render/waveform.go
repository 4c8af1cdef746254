package render

import (
	"math"

	"gonum.org/v1/plot/plotter"

	"calc555/internal/capacitor"
	"calc555/internal/domain"
)

// Waveform samples cycles periods of the 555 output and the timing
// capacitor voltage, with times in seconds. The capacitor swings between
// vcc/3 and 2vcc/3: it charges through R1+R2 while the output is high and
// discharges through R2 while it is low.
func Waveform(t domain.Timing, cycles, samples int, vcc float64) (output, capV plotter.XYs) {
	if cycles < 1 {
		cycles = 1
	}
	if samples < 2 {
		samples = 2
	}

	// th = ln2 * tau, so tau comes back out with the same constant
	tauCharge := t.Th / capacitor.Ln2Approx
	tauDischarge := t.Tl / capacitor.Ln2Approx

	output = make(plotter.XYs, 0, 4*cycles+1)
	capV = make(plotter.XYs, 0, 2*samples*cycles)

	for n := 0; n < cycles; n++ {
		start := float64(n) * t.Period
		high := start + t.Th
		end := start + t.Period

		output = append(output,
			plotter.XY{X: start, Y: vcc},
			plotter.XY{X: high, Y: vcc},
			plotter.XY{X: high, Y: 0},
			plotter.XY{X: end, Y: 0},
		)

		for i := 0; i < samples; i++ {
			dt := t.Th * float64(i) / float64(samples-1)
			v := vcc
			if tauCharge > 0 {
				v = vcc - (2.0/3.0)*vcc*math.Exp(-dt/tauCharge)
			}
			capV = append(capV, plotter.XY{X: start + dt, Y: v})
		}
		if tauDischarge == 0 {
			continue
		}
		for i := 1; i < samples; i++ {
			dt := t.Tl * float64(i) / float64(samples-1)
			v := (2.0 / 3.0) * vcc * math.Exp(-dt/tauDischarge)
			capV = append(capV, plotter.XY{X: high + dt, Y: v})
		}
	}
	output = append(output, plotter.XY{X: float64(cycles) * t.Period, Y: vcc})
	return output, capV
}
