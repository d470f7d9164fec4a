package journey

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

var (
	ErrClosed        = errors.New("journey: closed")
	ErrUnknownChoice = errors.New("journey: unknown choice")
	ErrNoBack        = errors.New("journey: step has no back edge")
	ErrNoExit        = errors.New("journey: step has no exit")
)

// Navigator moves the game to another scene.
type Navigator func(scene int)

// Machine holds the dialog position between Open and Close. It starts at
// StepInitial on every Open.
type Machine struct {
	step Step
	open bool
	// came records the step each visited step was entered from.
	came     map[Step]Step
	navigate Navigator
	onClose  func()
	logger   *log.Logger
}

func NewMachine(navigate Navigator, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.Default()
	}
	return &Machine{navigate: navigate, logger: logger}
}

// OnClose registers a callback run whenever the dialog closes.
func (m *Machine) OnClose(fn func()) {
	m.onClose = fn
}

func (m *Machine) Open() {
	m.step = StepInitial
	m.open = true
	m.came = make(map[Step]Step)
	m.logger.Debug("journey opened")
}

func (m *Machine) IsOpen() bool { return m.open }

func (m *Machine) Step() (Step, error) {
	if !m.open {
		return "", ErrClosed
	}
	return m.step, nil
}

func (m *Machine) Node() (Node, error) {
	if !m.open {
		return Node{}, ErrClosed
	}
	n, _ := Lookup(m.step)
	return n, nil
}

// Choose follows the forward transition with the given label.
func (m *Machine) Choose(label string) error {
	n, err := m.Node()
	if err != nil {
		return err
	}
	for _, c := range n.Choices {
		if c.Label == label {
			m.came[c.Target] = n.Step
			m.moveTo(c.Target)
			return nil
		}
	}
	return fmt.Errorf("%w: %q at %s", ErrUnknownChoice, label, n.Step)
}

func (m *Machine) Back() error {
	n, err := m.Node()
	if err != nil {
		return err
	}
	parent, _ := m.parent(n)
	if parent == "" {
		return fmt.Errorf("%w: %s", ErrNoBack, n.Step)
	}
	m.moveTo(parent)
	return nil
}

// parent resolves the back edge of n and its button label.
func (m *Machine) parent(n Node) (Step, string) {
	if n.BackToPrevious {
		if prev, ok := m.came[n.Step]; ok {
			return prev, BackLabel(prev)
		}
	}
	return n.Parent, n.ParentLabel
}

func (m *Machine) Restart() error {
	if !m.open {
		return ErrClosed
	}
	m.moveTo(StepInitial)
	return nil
}

// Exit navigates to ExitScene exactly once and closes the dialog.
func (m *Machine) Exit() error {
	n, err := m.Node()
	if err != nil {
		return err
	}
	if !n.Exit {
		return fmt.Errorf("%w: %s", ErrNoExit, n.Step)
	}
	m.logger.Info("journey finished", "step", n.Step, "scene", ExitScene)
	if m.navigate != nil {
		m.navigate(ExitScene)
	}
	return m.Close()
}

func (m *Machine) Close() error {
	if !m.open {
		return ErrClosed
	}
	m.open = false
	m.step = ""
	m.came = nil
	if m.onClose != nil {
		m.onClose()
	}
	return nil
}

func (m *Machine) moveTo(step Step) {
	m.logger.Debug("journey step", "from", m.step, "to", step)
	m.step = step
}

type OptionKind int

const (
	OptionChoose OptionKind = iota
	OptionExit
	OptionBack
	OptionRestart
)

// Option is a button offered at the current step.
type Option struct {
	Kind  OptionKind
	Label string
}

// Options lists the buttons for the current step in display order.
func (m *Machine) Options() []Option {
	n, err := m.Node()
	if err != nil {
		return nil
	}
	opts := make([]Option, 0, len(n.Choices)+3)
	for _, c := range n.Choices {
		opts = append(opts, Option{Kind: OptionChoose, Label: c.Label})
	}
	if n.Exit {
		opts = append(opts, Option{Kind: OptionExit, Label: LabelExit})
	}
	if parent, label := m.parent(n); parent != "" {
		opts = append(opts, Option{Kind: OptionBack, Label: label})
	}
	if n.Restart {
		opts = append(opts, Option{Kind: OptionRestart, Label: LabelRestart})
	}
	return opts
}

func (m *Machine) Select(o Option) error {
	switch o.Kind {
	case OptionChoose:
		return m.Choose(o.Label)
	case OptionExit:
		return m.Exit()
	case OptionBack:
		return m.Back()
	case OptionRestart:
		return m.Restart()
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownChoice, o.Kind)
	}
}
