package capacitor

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"calc555/internal/domain"
)

// Ln2Approx is ln(2) to three places. Every timing calculation in the build
// uses this constant so that th, tl and the period agree with each other.
const Ln2Approx = 0.693

const (
	pico  = 1e-12
	nano  = 1e-9
	micro = 1e-6
)

var (
	entryPattern = regexp.MustCompile(`(?P<value>\d*\.?\d+)\s*(?P<unit>[µμupnUPN][fF]?)?`)
	unitPattern  = regexp.MustCompile(`^[µμupnUPN][fF]?$`)
)

// Capacitor is a validated capacitance. The zero value is not valid.
type Capacitor struct {
	value float64
}

// FromText parses an entry such as "22", "22n" or "47 pF".
func FromText(entry string) (Capacitor, error) {
	m := entryPattern.FindStringSubmatch(entry)
	if m == nil {
		return Capacitor{}, fmt.Errorf("%w: %q", domain.ErrParse, entry)
	}
	magnitude, err := strconv.ParseFloat(m[entryPattern.SubexpIndex("value")], 64)
	if err != nil {
		return Capacitor{}, fmt.Errorf("%w: %q: %v", domain.ErrParse, entry, err)
	}

	unit := m[entryPattern.SubexpIndex("unit")]
	if unit == "" {
		unit = "µF"
	}
	if utf8.RuneCountInString(unit) == 1 {
		unit += "F"
	}
	return FromValueAndUnit(magnitude, unit)
}

// FromValueAndUnit scales magnitude by the decade letter of unit. p and n are
// pico and nano; u and µ are micro.
func FromValueAndUnit(magnitude float64, unit string) (Capacitor, error) {
	if !unitPattern.MatchString(unit) {
		return Capacitor{}, fmt.Errorf("%w: %q", domain.ErrInvalidUnit, unit)
	}

	switch strings.ToLower(unit)[0] {
	case 'p':
		magnitude *= pico
	case 'n':
		magnitude *= nano
	default:
		magnitude *= micro
	}
	return New(magnitude)
}

// FromAbsolute treats a value below 1 as Farads and anything else as
// microfarads.
func FromAbsolute(value float64) (Capacitor, error) {
	if value >= 1.0 {
		value *= micro
	}
	return New(value)
}

// New returns a capacitor of the given number of Farads.
func New(farads float64) (Capacitor, error) {
	if !(farads > 0) || math.IsInf(farads, 0) {
		return Capacitor{}, fmt.Errorf("%w: %g F", domain.ErrInvalidCapacitor, farads)
	}
	return Capacitor{value: farads}, nil
}

// Farads returns the capacitance.
func (c Capacitor) Farads() float64 { return c.value }

// Valid reports whether c holds a positive capacitance.
func (c Capacitor) Valid() bool { return c.value > 0 }

// CFactor returns ln(2) * C, the constant linking resistance to time.
func (c Capacitor) CFactor() float64 { return Ln2Approx * c.value }

// String renders the capacitance with an SI prefix, e.g. "22 µF".
func (c Capacitor) String() string {
	return humanize.SIWithDigits(c.value, 2, "F")
}
