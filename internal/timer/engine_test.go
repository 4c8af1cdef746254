package timer_test

import (
	"errors"
	"math"
	"testing"

	"calc555/internal/capacitor"
	"calc555/internal/domain"
	"calc555/internal/timer"
)

// newEngine returns an engine for a capacitance entry such as "22" or "100nf".
func newEngine(t *testing.T, entry string) *timer.Engine {
	t.Helper()
	c, err := capacitor.FromText(entry)
	if err != nil {
		t.Fatalf("FromText(%q): %v", entry, err)
	}
	e, err := timer.New(c)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func assertNear(t *testing.T, name string, got, want, delta float64) {
	t.Helper()
	if math.Abs(got-want) > delta {
		t.Errorf("%s = %v, want %v ± %v", name, got, want, delta)
	}
}

// must fails the test on error, used as must(t)(e.R1()).
func must(t *testing.T) func(float64, error) float64 {
	t.Helper()
	return func(v float64, err error) float64 {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return v
	}
}

func TestNew_RejectsZeroCapacitor(t *testing.T) {
	if _, err := timer.New(capacitor.Capacitor{}); !errors.Is(err, domain.ErrInvalidCapacitor) {
		t.Fatalf("err = %v, want ErrInvalidCapacitor", err)
	}
}

func TestExplicitResistors(t *testing.T) {
	e := newEngine(t, "22")
	if err := e.SetResistors(402, 6400); err != nil {
		t.Fatalf("SetResistors: %v", err)
	}

	if r1 := must(t)(e.R1()); r1 != 402 {
		t.Errorf("R1 = %v, want 402", r1)
	}
	if r2 := must(t)(e.R2()); r2 != 6400 {
		t.Errorf("R2 = %v, want 6400", r2)
	}
	assertNear(t, "Th", must(t)(e.Th()), 0.104, 0.0005)
	assertNear(t, "Tl", must(t)(e.Tl()), 0.098, 0.0005)
	assertNear(t, "ThMs", must(t)(e.ThMs()), 104, 0.5)
	assertNear(t, "TlMs", must(t)(e.TlMs()), 98, 0.5)
	assertNear(t, "Period", must(t)(e.Period()), 0.2013, 0.0005)
	assertNear(t, "PeriodMs", must(t)(e.PeriodMs()), 201.3, 0.5)
	assertNear(t, "FrequencyHz", must(t)(e.FrequencyHz()), 4.968, 0.0005)
	assertNear(t, "DutyRatio", must(t)(e.DutyRatio()), 0.515, 0.0005)
	assertNear(t, "DutyRatioPercent", must(t)(e.DutyRatioPercent()), 51.5, 0.05)
}

func TestResistorsFromPeriodAndDuty(t *testing.T) {
	cases := []struct {
		name   string
		duty   float64
		period float64
		hz     float64
	}{
		{name: "fraction, seconds", duty: 0.55, period: 0.200},
		{name: "percent, seconds", duty: 55, period: 0.200},
		{name: "percent, milliseconds", duty: 55, period: 200},
		{name: "percent, frequency", duty: 55, hz: 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t, "22")
			if err := e.SetDutyRatio(tc.duty); err != nil {
				t.Fatalf("SetDutyRatio: %v", err)
			}
			if tc.hz != 0 {
				if err := e.SetFrequencyHz(tc.hz); err != nil {
					t.Fatalf("SetFrequencyHz: %v", err)
				}
			} else if err := e.SetPeriod(tc.period); err != nil {
				t.Fatalf("SetPeriod: %v", err)
			}
			assertNear(t, "R2", must(t)(e.R2()), 5903, 1)
			assertNear(t, "R1", must(t)(e.R1()), 1312, 1)
		})
	}
}

func TestPeriodBeforeDuty(t *testing.T) {
	e := newEngine(t, "22")
	if err := e.SetPeriod(0.2); err != nil {
		t.Fatalf("SetPeriod: %v", err)
	}
	if _, err := e.R1(); !errors.Is(err, domain.ErrResistorsNotSet) {
		t.Fatalf("R1 before duty: err = %v, want ErrResistorsNotSet", err)
	}
	if err := e.SetDutyRatio(0.55); err != nil {
		t.Fatalf("SetDutyRatio: %v", err)
	}
	assertNear(t, "R2", must(t)(e.R2()), 5903, 1)
}

func TestLargeFrequencySmallCapacitor(t *testing.T) {
	e := newEngine(t, "100nf")
	if err := e.SetDutyRatio(51); err != nil {
		t.Fatalf("SetDutyRatio: %v", err)
	}
	if err := e.SetFrequencyHz(32_768); err != nil {
		t.Fatalf("SetFrequencyHz: %v", err)
	}
	assertNear(t, "R2", must(t)(e.R2()), 216, 1)
	assertNear(t, "R1", must(t)(e.R1()), 9, 1)
}

func TestFrequencyStability(t *testing.T) {
	cases := []struct {
		hz, period, periodDelta float64
	}{
		{999, 0.001, 0.0005},
		{9999, 0.0001, 0.00005},
		{32_768, 0.00003, 0.00001},
	}
	for _, tc := range cases {
		e := newEngine(t, "22")
		if err := e.SetDutyRatio(55); err != nil {
			t.Fatalf("SetDutyRatio: %v", err)
		}
		if err := e.SetFrequencyHz(tc.hz); err != nil {
			t.Fatalf("SetFrequencyHz: %v", err)
		}
		assertNear(t, "Period", must(t)(e.Period()), tc.period, tc.periodDelta)
		assertNear(t, "FrequencyHz", must(t)(e.FrequencyHz()), tc.hz, 1e-6*tc.hz)
	}
}

func TestDutyRatioNormalisation(t *testing.T) {
	a := newEngine(t, "22")
	b := newEngine(t, "22")
	for _, step := range []error{
		a.SetPeriod(0.2), a.SetDutyRatio(0.55),
		b.SetPeriod(0.2), b.SetDutyRatio(55),
	} {
		if step != nil {
			t.Fatalf("setup: %v", step)
		}
	}
	pa, _ := a.Resistors()
	pb, _ := b.Resistors()
	if pa != pb {
		t.Fatalf("0.55 gave %+v, 55 gave %+v", pa, pb)
	}
}

func TestDutyRatioOutOfRange(t *testing.T) {
	e := newEngine(t, "22")
	for _, v := range []float64{0.49, 49, 1.01, 101, math.NaN()} {
		if err := e.SetDutyRatio(v); !errors.Is(err, domain.ErrInvalidDutyRatio) {
			t.Errorf("SetDutyRatio(%v) err = %v, want ErrInvalidDutyRatio", v, err)
		}
	}
	// 1 and above are percentages, so 1.0 means 1%.
	if err := e.SetDutyRatio(1.0); !errors.Is(err, domain.ErrInvalidDutyRatio) {
		t.Errorf("SetDutyRatio(1.0) err = %v, want ErrInvalidDutyRatio", err)
	}
	for _, v := range []float64{0.5, 50, 0.999, 100} {
		if err := e.SetDutyRatio(v); err != nil {
			t.Errorf("SetDutyRatio(%v): %v", v, err)
		}
	}
}

func TestHalfDutyNeverNegative(t *testing.T) {
	for _, entry := range []string{"22", "100n", "47p", "3.3u"} {
		e := newEngine(t, entry)
		if err := e.SetDutyRatio(0.5); err != nil {
			t.Fatalf("SetDutyRatio: %v", err)
		}
		if err := e.SetPeriod(0.3); err != nil {
			t.Fatalf("SetPeriod: %v", err)
		}
		if r1 := must(t)(e.R1()); r1 < 0 || r1 > 1e-6 {
			t.Errorf("%s: R1 = %v at 50%% duty, want ~0 and never negative", entry, r1)
		}
	}
}

func TestUnsetResistorGuard(t *testing.T) {
	e := newEngine(t, "22")
	reads := map[string]func() (float64, error){
		"R1":          e.R1,
		"R2":          e.R2,
		"Th":          e.Th,
		"Tl":          e.Tl,
		"Period":      e.Period,
		"PeriodMs":    e.PeriodMs,
		"FrequencyHz": e.FrequencyHz,
		"DutyRatio":   e.DutyRatio,
	}
	for name, read := range reads {
		if _, err := read(); !errors.Is(err, domain.ErrResistorsNotSet) {
			t.Errorf("%s: err = %v, want ErrResistorsNotSet", name, err)
		}
	}
	if _, err := e.Timing(); !errors.Is(err, domain.ErrResistorsNotSet) {
		t.Errorf("Timing: err = %v, want ErrResistorsNotSet", err)
	}
}

func TestSetResistors_InvalidKeepsPrevious(t *testing.T) {
	e := newEngine(t, "22")
	if err := e.SetResistors(402, 6400); err != nil {
		t.Fatalf("SetResistors: %v", err)
	}
	for _, pair := range [][2]float64{{0, 100}, {100, -1}, {math.Inf(1), 100}} {
		if err := e.SetResistors(pair[0], pair[1]); !errors.Is(err, domain.ErrInvalidResistance) {
			t.Errorf("SetResistors(%v) err = %v, want ErrInvalidResistance", pair, err)
		}
	}
	p, err := e.Resistors()
	if err != nil {
		t.Fatalf("Resistors: %v", err)
	}
	if p != (domain.ResistorPair{R1: 402, R2: 6400}) {
		t.Fatalf("pair = %+v, want 402/6400", p)
	}
}

func TestSetFrequency_Zero(t *testing.T) {
	e := newEngine(t, "22")
	if err := e.SetFrequencyHz(0); !errors.Is(err, domain.ErrDivisionByZero) {
		t.Fatalf("err = %v, want ErrDivisionByZero", err)
	}
	if err := e.SetFrequencyHz(-5); !errors.Is(err, domain.ErrInvalidPeriod) {
		t.Fatalf("err = %v, want ErrInvalidPeriod", err)
	}
}

func TestSetFrequency_BelowOneHertz(t *testing.T) {
	e := newEngine(t, "22")
	if err := e.SetDutyRatio(0.6); err != nil {
		t.Fatalf("SetDutyRatio: %v", err)
	}
	if err := e.SetFrequencyHz(0.5); err != nil {
		t.Fatalf("SetFrequencyHz: %v", err)
	}
	assertNear(t, "Period", must(t)(e.Period()), 2.0, 1e-9)
}

func TestSetPeriod_Invalid(t *testing.T) {
	e := newEngine(t, "22")
	for _, v := range []float64{0, -1, math.Inf(1), math.NaN()} {
		if err := e.SetPeriod(v); !errors.Is(err, domain.ErrInvalidPeriod) {
			t.Errorf("SetPeriod(%v) err = %v, want ErrInvalidPeriod", v, err)
		}
	}
}

func TestSetCapacitance(t *testing.T) {
	e := newEngine(t, "22")
	if err := e.SetCapacitance(47); err != nil {
		t.Fatalf("SetCapacitance(47): %v", err)
	}
	assertNear(t, "Farads", e.Capacitor().Farads(), 47e-6, 1e-15)

	if err := e.SetCapacitance(0.0000001); err != nil {
		t.Fatalf("SetCapacitance(1e-7): %v", err)
	}
	assertNear(t, "Farads", e.Capacitor().Farads(), 1e-7, 1e-18)

	if err := e.SetCapacitance(0); !errors.Is(err, domain.ErrInvalidCapacitor) {
		t.Fatalf("SetCapacitance(0) err = %v, want ErrInvalidCapacitor", err)
	}
}

func TestSetCapacitance_RecomputesDerivedPair(t *testing.T) {
	e := newEngine(t, "22")
	if err := e.SetPeriod(0.2); err != nil {
		t.Fatalf("SetPeriod: %v", err)
	}
	if err := e.SetDutyRatio(0.55); err != nil {
		t.Fatalf("SetDutyRatio: %v", err)
	}
	before := must(t)(e.R2())
	if err := e.SetCapacitance(44); err != nil {
		t.Fatalf("SetCapacitance: %v", err)
	}
	assertNear(t, "R2", must(t)(e.R2()), before/2, 1e-6)
	assertNear(t, "Period", must(t)(e.Period()), 0.2, 1e-9)
}

func TestSetCapacitance_KeepsExplicitPair(t *testing.T) {
	e := newEngine(t, "22")
	if err := e.SetPeriod(0.2); err != nil {
		t.Fatalf("SetPeriod: %v", err)
	}
	if err := e.SetDutyRatio(0.55); err != nil {
		t.Fatalf("SetDutyRatio: %v", err)
	}
	if err := e.SetResistors(402, 6400); err != nil {
		t.Fatalf("SetResistors: %v", err)
	}
	if err := e.SetCapacitance(47); err != nil {
		t.Fatalf("SetCapacitance: %v", err)
	}
	if r1, r2 := must(t)(e.R1()), must(t)(e.R2()); r1 != 402 || r2 != 6400 {
		t.Fatalf("pair = %v/%v, want 402/6400", r1, r2)
	}
	// timing follows the new capacitor
	assertNear(t, "Th", must(t)(e.Th()), 0.693*6802*47e-6, 1e-9)
}

func TestSetDutyRatio_AfterExplicitPairDerivesAgain(t *testing.T) {
	e := newEngine(t, "22")
	if err := e.SetResistors(402, 6400); err != nil {
		t.Fatalf("SetResistors: %v", err)
	}
	if err := e.SetPeriod(0.2); err != nil {
		t.Fatalf("SetPeriod: %v", err)
	}
	if err := e.SetDutyRatio(0.55); err != nil {
		t.Fatalf("SetDutyRatio: %v", err)
	}
	if err := e.SetCapacitance(44); err != nil {
		t.Fatalf("SetCapacitance: %v", err)
	}
	assertNear(t, "Period", must(t)(e.Period()), 0.2, 1e-9)
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		cap    string
		r1, r2 float64
	}{
		{"22", 402, 6400},
		{"100n", 1_000, 10_000},
		{"1u", 100_000, 470_000},
		{"470u", 10_000, 100_000},
		{"10n", 1, 1_000_000},
		{"47p", 150, 150},
	}
	for _, tc := range cases {
		src := newEngine(t, tc.cap)
		if err := src.SetResistors(tc.r1, tc.r2); err != nil {
			t.Fatalf("SetResistors: %v", err)
		}
		timing, err := src.Timing()
		if err != nil {
			t.Fatalf("Timing: %v", err)
		}

		dst := newEngine(t, tc.cap)
		if err := dst.SetDutyRatio(timing.DutyRatio); err != nil {
			t.Fatalf("SetDutyRatio(%v): %v", timing.DutyRatio, err)
		}
		// sub-second periods go in as seconds, longer ones as milliseconds
		period := timing.Period
		if period >= 1 {
			period = timing.PeriodMs()
		}
		if err := dst.SetPeriod(period); err != nil {
			t.Fatalf("SetPeriod(%v): %v", period, err)
		}

		got, err := dst.Resistors()
		if err != nil {
			t.Fatalf("Resistors: %v", err)
		}
		assertNear(t, tc.cap+" R1", got.R1, tc.r1, 1e-6*tc.r1)
		assertNear(t, tc.cap+" R2", got.R2, tc.r2, 1e-6*tc.r2)
	}
}

func TestTimingMatchesAccessors(t *testing.T) {
	e := newEngine(t, "22")
	if err := e.SetResistors(402, 6400); err != nil {
		t.Fatalf("SetResistors: %v", err)
	}
	timing, err := e.Timing()
	if err != nil {
		t.Fatalf("Timing: %v", err)
	}
	if timing.Th != must(t)(e.Th()) || timing.Tl != must(t)(e.Tl()) {
		t.Errorf("Timing th/tl = %v/%v disagree with accessors", timing.Th, timing.Tl)
	}
	if timing.Period != must(t)(e.Period()) || timing.Frequency != must(t)(e.FrequencyHz()) {
		t.Errorf("Timing period/frequency disagree with accessors")
	}
	if timing.DutyRatio != must(t)(e.DutyRatio()) {
		t.Errorf("Timing duty ratio disagrees with accessors")
	}
}
