package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/x/ansi"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/navigation"
	"github.com/felixgeelhaar/pitchdeck/internal/tui/ui"
	"github.com/felixgeelhaar/statekit"
)

// Phase is the lifecycle phase of a slide transition.
type Phase string

// Machine state IDs.
const (
	stateIdle     = "idle"
	stateExiting  = "exiting"
	stateEntering = "entering"
)

const (
	// PhaseIdle shows the current slide at rest.
	PhaseIdle Phase = stateIdle
	// PhaseExiting moves the outgoing slide off screen.
	PhaseExiting Phase = stateExiting
	// PhaseEntering moves the incoming slide to rest.
	PhaseEntering Phase = stateEntering
)

// Event types for the transition state machine.
const (
	EventNavigate = "NAVIGATE"
	EventExited   = "EXITED"
	EventSettled  = "SETTLED"
)

// settleThreshold is the distance, in columns, at which motion counts as done.
const settleThreshold = 0.5

// TransitionConfig configures slide motion.
type TransitionConfig struct {
	Animate          bool
	FrameInterval    time.Duration
	AngularFrequency float64
	DampingRatio     float64
}

// DefaultTransitionConfig returns 60 fps motion with stiffness 300 and
// damping 30.
func DefaultTransitionConfig() TransitionConfig {
	return TransitionConfig{
		Animate:          true,
		FrameInterval:    time.Second / 60,
		AngularFrequency: math.Sqrt(300),
		DampingRatio:     30 / (2 * math.Sqrt(300)),
	}
}

type transitionContext struct{}

// Transition animates the swap between two slides. Exactly one slide is
// visible at a time: the outgoing one while exiting, the incoming one after.
type Transition struct {
	interp   *statekit.Interpreter[transitionContext]
	spring   harmonica.Spring
	animate  bool
	interval time.Duration
	width    int

	generation int
	outgoing   int
	target     int
	direction  navigation.Direction

	pos  float64
	vel  float64
	goal float64
}

// NewTransition builds and starts the transition machine at rest on index 0.
// Stop must be called when the presentation ends.
func NewTransition(cfg TransitionConfig) (*Transition, error) {
	machine, err := statekit.NewMachine[transitionContext]("slide-transition").
		WithInitial(stateIdle).
		WithContext(transitionContext{}).
		State(stateIdle).
		On(EventNavigate).Target(stateExiting).Done().
		State(stateExiting).
		On(EventExited).Target(stateEntering).Done().
		State(stateEntering).
		On(EventNavigate).Target(stateExiting).
		On(EventSettled).Target(stateIdle).Done().
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build transition machine: %w", err)
	}

	interval := cfg.FrameInterval
	if interval <= 0 {
		interval = time.Second / 60
	}

	t := &Transition{
		interp:   statekit.NewInterpreter(machine),
		spring:   harmonica.NewSpring(interval.Seconds(), cfg.AngularFrequency, cfg.DampingRatio),
		animate:  cfg.Animate && cfg.AngularFrequency > 0,
		interval: interval,
	}
	t.interp.Start()
	return t, nil
}

// Stop stops the transition machine.
func (t *Transition) Stop() {
	t.interp.Stop()
}

// Phase returns the current lifecycle phase.
func (t *Transition) Phase() Phase {
	return Phase(t.interp.State().Value)
}

// Moving reports whether a transition is in progress.
func (t *Transition) Moving() bool {
	return t.Phase() != PhaseIdle
}

// Visible returns the index of the slide to draw.
func (t *Transition) Visible() int {
	if t.Phase() == PhaseExiting {
		return t.outgoing
	}
	return t.target
}

// Target returns the index the transition is heading to.
func (t *Transition) Target() int {
	return t.target
}

// Generation returns the number of transitions begun so far.
func (t *Transition) Generation() int {
	return t.generation
}

// Offset returns the horizontal displacement of the visible slide in columns.
// Negative values move it left.
func (t *Transition) Offset() int {
	return int(math.Round(t.pos))
}

// SetWidth sets the travel distance of a full exit or entrance.
func (t *Transition) SetWidth(width int) {
	t.width = max(width, 0)
}

// Begin starts a transition to target. An in-flight transition is
// superseded: the slide currently on screen becomes the outgoing one and
// keeps its position. The returned command schedules the first frame; it is
// nil when the transition settles immediately.
func (t *Transition) Begin(target int, direction navigation.Direction) tea.Cmd {
	t.outgoing = t.Visible()
	t.target = target
	t.direction = direction
	t.generation++

	if !t.animate || direction == navigation.None || t.width == 0 {
		t.settle()
		return nil
	}

	switch t.Phase() {
	case PhaseIdle:
		t.pos, t.vel = 0, 0
		t.interp.Send(statekit.Event{Type: EventNavigate})
	case PhaseEntering:
		t.interp.Send(statekit.Event{Type: EventNavigate})
	case PhaseExiting:
		if target == t.outgoing {
			// Reversed before leaving: spring back from where it is.
			t.interp.Send(statekit.Event{Type: EventExited})
			t.vel, t.goal = 0, 0
			return ui.Frame(t.interval, t.generation, t.target)
		}
	}
	t.goal = -float64(direction) * float64(t.width)

	return ui.Frame(t.interval, t.generation, t.target)
}

// Reset jumps to index at rest, superseding any transition.
func (t *Transition) Reset(index int) {
	t.outgoing = index
	t.target = index
	t.direction = navigation.None
	t.generation++
	t.settle()
}

// Current reports whether msg belongs to the active transition.
func (t *Transition) Current(msg ui.FrameMsg) bool {
	return msg.Generation == t.generation && msg.Target == t.target && t.Moving()
}

// Step advances the motion by one frame. Stale frames are ignored and
// return nil.
func (t *Transition) Step(msg ui.FrameMsg) tea.Cmd {
	if !t.Current(msg) {
		return nil
	}

	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.goal)

	switch t.Phase() {
	case PhaseExiting:
		if t.pos*math.Copysign(1, t.goal) >= math.Abs(t.goal)-settleThreshold {
			t.interp.Send(statekit.Event{Type: EventExited})
			t.pos = float64(t.direction) * float64(t.width)
			t.vel = 0
			t.goal = 0
		}
	case PhaseEntering:
		if math.Abs(t.pos) < settleThreshold && math.Abs(t.vel) < settleThreshold {
			t.settle()
			return nil
		}
	}

	return ui.Frame(t.interval, t.generation, t.target)
}

// settle drives the machine to idle with the target at rest.
func (t *Transition) settle() {
	switch t.Phase() {
	case PhaseIdle:
		t.interp.Send(statekit.Event{Type: EventNavigate})
		t.interp.Send(statekit.Event{Type: EventExited})
	case PhaseExiting:
		t.interp.Send(statekit.Event{Type: EventExited})
	}
	t.interp.Send(statekit.Event{Type: EventSettled})
	t.pos, t.vel, t.goal = 0, 0, 0
}

// shiftBlock moves every line of a block offset columns to the right (left
// when negative) inside a viewport of width columns.
func shiftBlock(block string, offset, width int) string {
	if offset == 0 || width <= 0 {
		return block
	}

	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		switch {
		case offset >= width || offset <= -width:
			lines[i] = strings.Repeat(" ", width)
		case offset > 0:
			lines[i] = ansi.Truncate(strings.Repeat(" ", offset)+line, width, "")
		default:
			cut := ansi.Cut(line, -offset, width)
			lines[i] = cut + strings.Repeat(" ", max(width-ansi.StringWidth(cut), 0))
		}
	}
	return strings.Join(lines, "\n")
}
