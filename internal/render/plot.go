package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"calc555/internal/domain"
	"calc555/internal/format"
)

// Plot defaults.
const (
	DefaultCycles = 3
	DefaultVcc    = 5.0
	DefaultFormat = "png"

	samplesPerPhase = 64
)

// Plot draws the output and capacitor waveforms as an image. Format is any
// format gonum/plot can write ("png", "svg", "pdf", "jpg", "eps", "tif").
type Plot struct {
	Cycles int
	Vcc    float64
	Format string
	Width  vg.Length
	Height vg.Length
}

// NewPlot returns a Plot with the package defaults.
func NewPlot() Plot {
	return Plot{
		Cycles: DefaultCycles,
		Vcc:    DefaultVcc,
		Format: DefaultFormat,
		Width:  8 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

// Render writes the chart for result to w.
func (p Plot) Render(w io.Writer, result domain.Result) error {
	pl, err := p.build(result.Timing)
	if err != nil {
		return err
	}
	wt, err := pl.WriterTo(p.Width, p.Height, p.Format)
	if err != nil {
		return fmt.Errorf("plot %s: %w", p.Format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

func (p Plot) build(t domain.Timing) (*plot.Plot, error) {
	if t.Period <= 0 {
		return nil, fmt.Errorf("plot: %w", domain.ErrResistorsNotSet)
	}
	scale := format.ScaleFor(t.Frequency)
	out, capV := Waveform(t, p.Cycles, samplesPerPhase, p.Vcc)
	rescale(out, scale)
	rescale(capV, scale)

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("555 astable: C %s, R1 %s, R2 %s",
		humanize.SIWithDigits(t.Capacitance, 2, "F"),
		format.Resistance(t.Resistors.R1),
		format.Resistance(t.Resistors.R2))
	pl.X.Label.Text = fmt.Sprintf("Time (%s)", scale.TimeUnit)
	pl.Y.Label.Text = "Voltage (V)"
	pl.Y.Min, pl.Y.Max = 0, p.Vcc*1.1
	pl.Add(plotter.NewGrid())

	outLine, err := plotter.NewLine(out)
	if err != nil {
		return nil, err
	}
	outLine.LineStyle.Width = vg.Points(1.5)
	outLine.LineStyle.Color = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}

	capLine, err := plotter.NewLine(capV)
	if err != nil {
		return nil, err
	}
	capLine.LineStyle.Width = vg.Points(1)
	capLine.LineStyle.Color = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	capLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	pl.Add(outLine, capLine)
	pl.Legend.Add("output", outLine)
	pl.Legend.Add("capacitor", capLine)
	pl.Legend.Top = true
	return pl, nil
}

func rescale(xys plotter.XYs, s format.Scale) {
	for i := range xys {
		xys[i].X = s.Time(xys[i].X)
	}
}

var _ domain.Renderer = Plot{}
