package calculator

import (
	"calc555/internal/capacitor"
	"calc555/internal/domain"
)

// Session is one run of the interactive calculator: a current capacitor and
// the last successful result. A failed calculation leaves both untouched.
type Session struct {
	svc     *Service
	current capacitor.Capacitor
	last    *domain.Result
}

// NewSession starts a session with the given capacitor entry.
func (s *Service) NewSession(capText string) (*Session, error) {
	sess := &Session{svc: s}
	if err := sess.SetCapacitor(capText); err != nil {
		return nil, err
	}
	return sess, nil
}

// SetCapacitor replaces the capacitor and forgets the last result, which was
// computed for the old one.
func (s *Session) SetCapacitor(capText string) error {
	c, err := capacitor.FromText(capText)
	if err != nil {
		return err
	}
	s.current, s.last = c, nil
	s.svc.log.Debug("capacitor changed", "capacitor", c.String())
	return nil
}

// Capacitor returns the current capacitor.
func (s *Session) Capacitor() capacitor.Capacitor { return s.current }

// ApplyResistors calculates timing from explicit resistors.
func (s *Session) ApplyResistors(r1, r2 float64) (domain.Result, error) {
	return s.keep(s.svc.fromResistors(s.current, r1, r2))
}

// ApplyPeriod calculates resistors from a period and duty ratio.
func (s *Session) ApplyPeriod(period, duty float64) (domain.Result, error) {
	return s.keep(s.svc.fromPeriod(s.current, period, duty))
}

// ApplyFrequency calculates resistors from a frequency and duty ratio.
func (s *Session) ApplyFrequency(hz, duty float64) (domain.Result, error) {
	return s.keep(s.svc.fromFrequency(s.current, hz, duty))
}

// Result returns the last successful result.
func (s *Session) Result() (domain.Result, bool) {
	if s.last == nil {
		return domain.Result{}, false
	}
	return *s.last, true
}

func (s *Session) keep(r domain.Result, err error) (domain.Result, error) {
	if err != nil {
		return domain.Result{}, err
	}
	s.last = &r
	return r, nil
}
