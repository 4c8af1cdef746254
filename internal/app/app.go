package app

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gonum.org/v1/plot/vg"

	"calc555/internal/domain"
	"calc555/internal/format"
	"calc555/internal/render"
	"calc555/internal/services/calculator"
)

// App bundles the services and renderers commands use.
type App struct {
	Config     Config
	Log        *slog.Logger
	Calculator *calculator.Service
	Formatter  format.Formatter
}

// New constructs the dependency graph from cfg.
func New(cfg Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		Config:     cfg,
		Log:        logger,
		Calculator: calculator.New(cfg.Limits, logger),
		Formatter:  format.Formatter{LowValueThreshold: cfg.LowValueThreshold},
	}
}

// TextRenderer returns the styled renderer when colour is on and the plain
// one otherwise.
func (a *App) TextRenderer() domain.Renderer {
	if a.Config.Color {
		return render.Styled{Formatter: a.Formatter}
	}
	return render.Text{Formatter: a.Formatter}
}

// PlotRenderer returns a chart renderer from the plot config. An empty
// format falls back to the config default.
func (a *App) PlotRenderer(kind string) domain.Renderer {
	p := a.Config.Plot
	if kind == "" {
		kind = p.Format
	}
	return render.Plot{
		Cycles: p.Cycles,
		Vcc:    p.Vcc,
		Format: kind,
		Width:  vg.Length(p.WidthIn) * vg.Inch,
		Height: vg.Length(p.HeightIn) * vg.Inch,
	}
}

// Palette returns the lipgloss palette bound to w.
func (a *App) Palette(w io.Writer) render.Palette {
	r := lipgloss.NewRenderer(w)
	if !a.Config.Color {
		r.SetColorProfile(termenv.Ascii)
	}
	return render.NewPalette(r)
}
