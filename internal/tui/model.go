package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"calc555/internal/domain"
	"calc555/internal/format"
	"calc555/internal/render"
	"calc555/internal/services/calculator"
)

const maxHistory = 200

type stage int

const (
	stageCapacitor stage = iota
	stageMenu
	stageValues
)

// action is one menu entry: the prompts it asks and the session call that
// takes the answers.
type action struct {
	prompts []string
	run     func(s *calculator.Session, v []float64) (domain.Result, error)
}

var actions = map[string]*action{
	"P": {
		prompts: []string{"Enter the Period in ms", "Enter the Duty Ratio"},
		run: func(s *calculator.Session, v []float64) (domain.Result, error) {
			return s.ApplyPeriod(v[0], v[1])
		},
	},
	"F": {
		prompts: []string{"Enter the Frequency in Hz", "Enter the Duty Ratio"},
		run: func(s *calculator.Session, v []float64) (domain.Result, error) {
			return s.ApplyFrequency(v[0], v[1])
		},
	},
	"R": {
		prompts: []string{"Enter the R1 value", "Enter the R2 value"},
		run: func(s *calculator.Session, v []float64) (domain.Result, error) {
			return s.ApplyResistors(v[0], v[1])
		},
	},
}

// Model is the bubbletea model for the interactive calculator.
type Model struct {
	svc        *calculator.Service
	sess       *calculator.Session
	palette    render.Palette
	formatter  format.Formatter
	defaultCap string

	stage   stage
	pending *action
	answers []float64

	input    []rune
	history  []string
	quitting bool
}

// New returns a model that starts by asking for a capacitor. An empty entry
// uses defaultCap.
func New(svc *calculator.Service, palette render.Palette, f format.Formatter, defaultCap string) Model {
	m := Model{
		svc:        svc,
		palette:    palette,
		formatter:  f,
		defaultCap: defaultCap,
	}
	m.say(palette.Title.Render("  555 Timer Calculator\n  ===================="))
	m.say("")
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if n := len(m.input); n > 0 {
			m.input = m.input[:n-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	case tea.KeyEnter:
		entry := strings.TrimSpace(string(m.input))
		m.say(m.prompt() + entry)
		m.input = nil
		return m.submit(entry)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	for _, line := range m.history {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if m.quitting {
		return b.String()
	}
	b.WriteString(m.prompt())
	b.WriteString(m.palette.Value.Render(string(m.input) + "█"))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) prompt() string {
	switch m.stage {
	case stageCapacitor:
		return fmt.Sprintf("Capacitor: (%s)? ", m.defaultCap)
	case stageValues:
		return m.pending.prompts[len(m.answers)] + "? "
	default:
		return "\nEnter Duty Ratio and (P)eriod or (F)requency,\n" +
			"(R)esistor values, (C)hange Capacitor or\n(Q)uit? "
	}
}

func (m Model) submit(entry string) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageCapacitor:
		m.setCapacitor(entry)
	case stageMenu:
		return m.choose(entry)
	case stageValues:
		m.collect(entry)
	}
	return m, nil
}

func (m *Model) setCapacitor(entry string) {
	if entry == "" {
		entry = m.defaultCap
	}
	var err error
	if m.sess == nil {
		m.sess, err = m.svc.NewSession(entry)
	} else {
		err = m.sess.SetCapacitor(entry)
	}
	if err != nil {
		m.fail(err)
		return
	}
	m.say("Using " + m.palette.Value.Render(m.sess.Capacitor().String()))
	m.stage = stageMenu
}

func (m Model) choose(entry string) (tea.Model, tea.Cmd) {
	if entry == "" {
		return m, nil
	}
	op := strings.ToUpper(entry[:1])
	if a, ok := actions[op]; ok {
		m.start(a)
		return m, nil
	}
	switch op {
	case "C":
		m.stage = stageCapacitor
	case "Q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.say(m.palette.Warn.Render("Unrecognised Option"))
	}
	return m, nil
}

func (m *Model) start(a *action) {
	m.pending, m.answers, m.stage = a, nil, stageValues
}

func (m *Model) collect(entry string) {
	v, err := strconv.ParseFloat(entry, 64)
	if err != nil {
		m.fail(errors.New("please enter a number"))
		return
	}
	m.answers = append(m.answers, v)
	if len(m.answers) < len(m.pending.prompts) {
		return
	}

	a := m.pending
	m.pending, m.stage = nil, stageMenu
	r, err := a.run(m.sess, m.answers)
	if err != nil {
		m.fail(err)
		return
	}
	m.say("")
	m.say(m.palette.Title.Render("    Calculated Values\n    ================="))
	m.say("")
	for _, line := range format.ResultLines(r, m.formatter) {
		m.say(m.palette.Line(line))
	}
}

func (m *Model) fail(err error) {
	m.say(m.palette.Warn.Render(err.Error()))
}

func (m *Model) say(line string) {
	m.history = append(m.history, line)
	if n := len(m.history); n > maxHistory {
		m.history = m.history[n-maxHistory:]
	}
}

// Run starts the interactive calculator on the given terminal streams.
func Run(m Model, in io.Reader, out io.Writer) error {
	_, err := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
	return err
}
