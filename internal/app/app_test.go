package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"calc555/internal/app"
	"calc555/internal/render"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := app.LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DefaultCapacitor != "10µF" || cfg.Limits.FrequencyMin != 0.1 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfig_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc555.json")
	body := `{"default_capacitor": "22n", "limits": {"frequency_min": 1}, "color": false}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := app.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DefaultCapacitor != "22n" || cfg.Color {
		t.Errorf("overlay not applied: %+v", cfg)
	}
	if cfg.Limits.FrequencyMin != 1 || cfg.Limits.FrequencyMax != 300_000 {
		t.Errorf("limits = %+v, want min 1 and default max", cfg.Limits)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := app.LoadConfig(bad); err == nil {
		t.Error("malformed JSON accepted")
	}

	inverted := filepath.Join(dir, "inverted.json")
	if err := os.WriteFile(inverted, []byte(`{"limits": {"period_min": 10, "period_max": 1}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := app.LoadConfig(inverted); err == nil {
		t.Error("inverted period limits accepted")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc555.json")
	cfg := app.DefaultConfig()
	cfg.LowValueThreshold = 0
	if err := app.SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err := app.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != cfg {
		t.Fatalf("got %+v, want %+v", got, cfg)
	}
}

func TestRenderers(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Color = false
	a := app.New(cfg, nil)

	if _, ok := a.TextRenderer().(render.Text); !ok {
		t.Errorf("TextRenderer with colour off = %T, want render.Text", a.TextRenderer())
	}
	p, ok := a.PlotRenderer("svg").(render.Plot)
	if !ok || p.Format != "svg" || p.Cycles != cfg.Plot.Cycles {
		t.Errorf("PlotRenderer = %+v", p)
	}

	r, err := a.Calculator.FromResistors(cfg.DefaultCapacitor, 402, 6400)
	if err != nil {
		t.Fatalf("FromResistors: %v", err)
	}
	var buf bytes.Buffer
	if err := a.TextRenderer().Render(&buf, r); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "402 Ω") {
		t.Errorf("output:\n%s", buf.String())
	}
}
