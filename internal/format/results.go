package format

import (
	"fmt"
	"strings"

	"calc555/internal/domain"
)

// kiloHertzAbove is the frequency above which results switch to kHz and µs.
const kiloHertzAbove = 999.0

// Scale is the unit pair used to show a frequency and its times.
type Scale struct {
	FrequencyUnit string
	TimeUnit      string

	hzDivisor  float64
	secondsMul float64
}

// ScaleFor picks kHz/µs above 999 Hz and Hz/ms otherwise.
func ScaleFor(hz float64) Scale {
	if hz > kiloHertzAbove {
		return Scale{FrequencyUnit: "kHz", TimeUnit: "µs", hzDivisor: 1_000, secondsMul: 1_000_000}
	}
	return Scale{FrequencyUnit: "Hz", TimeUnit: "ms", hzDivisor: 1, secondsMul: 1_000}
}

// Frequency converts hertz into the scale's frequency unit.
func (s Scale) Frequency(hz float64) float64 { return hz / s.hzDivisor }

// Time converts seconds into the scale's time unit.
func (s Scale) Time(seconds float64) float64 { return seconds * s.secondsMul }

// SegmentKind tells a renderer how to style a Segment.
type SegmentKind int

const (
	Plain SegmentKind = iota
	Value
	Warn
)

// Segment is a run of text with a single style.
type Segment struct {
	Text string
	Kind SegmentKind
}

// Line is one output line made of segments.
type Line []Segment

// String joins the segments without styling.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

func plain(s string) Segment { return Segment{Text: s} }

func value(format string, args ...any) Segment {
	return Segment{Text: fmt.Sprintf(format, args...), Kind: Value}
}

// Lines lays out frequency, duty ratio and resistors for t.
func Lines(t domain.Timing, f Formatter) []Line {
	s := ScaleFor(t.Frequency)
	return []Line{
		{
			plain("Frequency:  "), value("%5.1f%s", s.Frequency(t.Frequency), s.FrequencyUnit),
			plain("  ("), value("%.1f%s", s.Time(t.Period), s.TimeUnit), plain(")"),
		},
		{
			plain("Duty Ratio: "), value("%5.1f%%", t.DutyRatioPercent()),
			plain("   (th: "), value("%5.1f%s", s.Time(t.Th), s.TimeUnit),
			plain(", tl: "), value("%5.1f%s", s.Time(t.Tl), s.TimeUnit), plain(")"),
		},
		{},
		{plain("Resistors - R1: "), value("%s", f.Resistance(t.Resistors.R1))},
		{plain("            R2: "), value("%s", f.Resistance(t.Resistors.R2))},
	}
}

// WarningLines renders one line per warning. Remedies are indented under
// the findings and styled as values.
func WarningLines(warnings []domain.Warning) []Line {
	lines := make([]Line, 0, len(warnings))
	for _, w := range warnings {
		if w.Code.IsRemedy() {
			lines = append(lines, Line{plain("  "), {Text: w.Message, Kind: Value}})
			continue
		}
		lines = append(lines, Line{{Text: w.Message, Kind: Warn}})
	}
	return lines
}

// ResultLines is Lines followed by a blank line and the warnings, if any.
func ResultLines(r domain.Result, f Formatter) []Line {
	lines := Lines(r.Timing, f)
	if len(r.Warnings) > 0 {
		lines = append(lines, Line{})
		lines = append(lines, WarningLines(r.Warnings)...)
	}
	return lines
}
