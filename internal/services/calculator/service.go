package calculator

import (
	"fmt"
	"log/slog"

	"calc555/internal/capacitor"
	"calc555/internal/domain"
	"calc555/internal/format"
	"calc555/internal/timer"
)

// Service runs single calculations. It holds no engine state between calls.
type Service struct {
	limits Limits
	log    *slog.Logger
}

// New returns a calculator service. A nil logger uses slog.Default().
func New(limits Limits, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{limits: limits, log: logger}
}

// FromResistors derives timing from a capacitor entry and explicit resistors.
func (s *Service) FromResistors(capText string, r1, r2 float64) (domain.Result, error) {
	c, err := capacitor.FromText(capText)
	if err != nil {
		return domain.Result{}, err
	}
	return s.fromResistors(c, r1, r2)
}

// FromPeriod derives resistors from a capacitor entry, a period and a duty
// ratio.
func (s *Service) FromPeriod(capText string, period, duty float64) (domain.Result, error) {
	c, err := capacitor.FromText(capText)
	if err != nil {
		return domain.Result{}, err
	}
	return s.fromPeriod(c, period, duty)
}

// FromFrequency derives resistors from a capacitor entry, a frequency in Hz
// and a duty ratio.
func (s *Service) FromFrequency(capText string, hz, duty float64) (domain.Result, error) {
	c, err := capacitor.FromText(capText)
	if err != nil {
		return domain.Result{}, err
	}
	return s.fromFrequency(c, hz, duty)
}

func (s *Service) fromResistors(c capacitor.Capacitor, r1, r2 float64) (domain.Result, error) {
	e, err := timer.New(c)
	if err != nil {
		return domain.Result{}, err
	}
	if err := e.SetResistors(r1, r2); err != nil {
		return domain.Result{}, err
	}
	return s.result("resistors", e)
}

func (s *Service) fromPeriod(c capacitor.Capacitor, period, duty float64) (domain.Result, error) {
	if err := s.limits.checkPeriod(period); err != nil {
		return domain.Result{}, err
	}
	if err := s.limits.checkDuty(duty); err != nil {
		return domain.Result{}, err
	}
	e, err := timer.New(c)
	if err != nil {
		return domain.Result{}, err
	}
	if err := e.SetPeriod(period); err != nil {
		return domain.Result{}, err
	}
	if err := e.SetDutyRatio(duty); err != nil {
		return domain.Result{}, err
	}
	return s.result("period", e)
}

func (s *Service) fromFrequency(c capacitor.Capacitor, hz, duty float64) (domain.Result, error) {
	if err := s.limits.checkFrequency(hz); err != nil {
		return domain.Result{}, err
	}
	if err := s.limits.checkDuty(duty); err != nil {
		return domain.Result{}, err
	}
	e, err := timer.New(c)
	if err != nil {
		return domain.Result{}, err
	}
	if err := e.SetFrequencyHz(hz); err != nil {
		return domain.Result{}, err
	}
	if err := e.SetDutyRatio(duty); err != nil {
		return domain.Result{}, err
	}
	return s.result("frequency", e)
}

func (s *Service) result(mode string, e *timer.Engine) (domain.Result, error) {
	t, err := e.Timing()
	if err != nil {
		return domain.Result{}, fmt.Errorf("%s calculation: %w", mode, err)
	}
	warnings := format.CheckRange(t.Resistors.R1, t.Resistors.R2)
	s.log.Debug("calculated",
		"mode", mode,
		"capacitor", e.Capacitor().String(),
		"r1", t.Resistors.R1,
		"r2", t.Resistors.R2,
		"period_s", t.Period,
		"duty", t.DutyRatio,
		"warnings", len(warnings),
	)
	return domain.Result{Timing: t, Warnings: warnings}, nil
}

// Compile-time assertion that Service implements domain.CalculatorService.
var _ domain.CalculatorService = (*Service)(nil)
