package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/felixgeelhaar/pitchdeck/internal/adapters/logging"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/navigation"
	"github.com/felixgeelhaar/pitchdeck/internal/ports"
	"github.com/felixgeelhaar/pitchdeck/internal/tui/components"
	"github.com/felixgeelhaar/pitchdeck/internal/tui/slides"
	"github.com/felixgeelhaar/pitchdeck/internal/tui/ui"
)

// controlKind identifies a clickable footer control.
type controlKind int

const (
	controlReplay controlKind = iota
	controlPrev
	controlNext
)

// control is a footer button and its horizontal hit zone on the control row.
type control struct {
	kind    controlKind
	label   string
	enabled bool
	x       int
	width   int
}

// deckModel presents a deck one slide at a time.
type deckModel struct {
	ctx        context.Context
	logger     ports.Logger
	deck       deck.Deck
	nav        navigation.Controller
	transition *Transition
	renderer   slides.Renderer
	styles     ui.Styles
	keys       ui.KeyMap
	help       help.Model
	progress   components.Progress
	mouse      bool
	width      int
	height     int

	visited  []bool
	replays  int
	quitting bool
}

func newDeckModel(ctx context.Context, opts DeckOptions) (deckModel, error) {
	nav, err := navigation.NewController(opts.Deck.Len())
	if err != nil {
		return deckModel{}, err
	}

	transition, err := NewTransition(opts.Transition)
	if err != nil {
		return deckModel{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	styles := ui.DefaultStyles()
	m := deckModel{
		ctx:        ctx,
		logger:     logger,
		deck:       opts.Deck,
		nav:        nav,
		transition: transition,
		styles:     styles,
		keys:       ui.DefaultKeyMap(),
		help:       help.New(),
		progress:   components.NewProgress().WithStyles(styles),
		mouse:      opts.Mouse,
		visited:    make([]bool, opts.Deck.Len()),
	}
	m.visited[0] = true
	m = m.resize(ui.DefaultWidth, ui.DefaultHeight)
	return m, nil
}

func (m deckModel) Init() tea.Cmd {
	m.logger.Debug(m.ctx, "deck mounted",
		ports.F("title", m.deck.Title()),
		ports.F("slides", m.deck.Len()),
	)
	return tea.SetWindowTitle(m.deck.Title())
}

func (m deckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case ui.FrameMsg:
		if !m.transition.Current(msg) {
			return m, nil
		}
		before := m.transition.Phase()
		cmd := m.transition.Step(msg)
		if after := m.transition.Phase(); after != before {
			m.logger.Debug(m.ctx, "transition phase",
				ports.F("from", string(before)),
				ports.F("to", string(after)),
				ports.F("visible", m.transition.Visible()),
			)
		}
		return m, cmd

	case ui.ReplayMsg:
		return m.replay()
	}

	return m, nil
}

func (m deckModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.activeKeys()

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		m.logger.Debug(m.ctx, "deck unmounted", ports.F("index", m.nav.Index()))
		return m, tea.Quit
	case key.Matches(msg, keys.Next):
		return m.advance()
	case key.Matches(msg, keys.Prev):
		return m.retreat()
	case key.Matches(msg, keys.Replay):
		return m.replay()
	}

	return m, nil
}

func (m deckModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mouse || msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if msg.Y != m.controlRow() {
		return m, nil
	}

	for _, c := range m.controls() {
		if msg.X < c.x || msg.X >= c.x+c.width || !c.enabled {
			continue
		}
		switch c.kind {
		case controlPrev:
			return m.retreat()
		case controlNext:
			return m.advance()
		case controlReplay:
			return m.replay()
		}
	}

	return m, nil
}

func (m deckModel) advance() (tea.Model, tea.Cmd) {
	from := m.nav.Index()
	if !m.nav.Advance() {
		return m, nil
	}
	return m, m.navigated(from)
}

func (m deckModel) retreat() (tea.Model, tea.Cmd) {
	from := m.nav.Index()
	if !m.nav.Retreat() {
		return m, nil
	}
	return m, m.navigated(from)
}

// navigated records a successful move and starts its transition.
func (m *deckModel) navigated(from int) tea.Cmd {
	to := m.nav.Index()
	m.visited[to] = true

	m.logger.Debug(m.ctx, "slide changed",
		ports.F("from", from),
		ports.F("to", to),
		ports.F("direction", m.nav.Direction().String()),
	)
	if s, ok := m.deck.Slide(to); ok && !slides.Renderable(s) {
		m.logger.Warn(m.ctx, "slide has no template",
			ports.F("index", to),
			ports.F("id", s.ID),
			ports.F("variant", s.Variant.String()),
		)
	}

	return m.transition.Begin(to, m.nav.Direction())
}

// replay remounts the navigation state at the first slide.
func (m deckModel) replay() (tea.Model, tea.Cmd) {
	if !m.canReplay() {
		return m, nil
	}

	nav, err := navigation.NewController(m.deck.Len())
	if err != nil {
		return m, nil
	}
	m.nav = nav
	m.transition.Reset(0)
	m.replays++

	m.logger.Debug(m.ctx, "presentation replayed", ports.F("replays", m.replays))
	return m, nil
}

func (m deckModel) current() (deck.Slide, bool) {
	return m.deck.Slide(m.nav.Index())
}

// canReplay reports whether the current slide offers the replay control.
func (m deckModel) canReplay() bool {
	s, ok := m.current()
	return ok && s.Variant == deck.VariantClosing
}

func (m deckModel) replayLabel() string {
	s, ok := m.current()
	if !ok {
		return deck.DefaultReplayAction
	}
	if c, ok := s.Content.(deck.ClosingContent); ok && c.Action != "" {
		return c.Action
	}
	return deck.DefaultReplayAction
}

// activeKeys returns the key map with bindings disabled at the boundaries.
func (m deckModel) activeKeys() ui.KeyMap {
	return m.keys.WithBoundaries(m.nav.CanRetreat(), m.nav.CanAdvance(), m.canReplay())
}

func (m deckModel) resize(width, height int) deckModel {
	m.width = max(width, 1)
	m.height = max(height, ui.HeaderHeight+ui.MinBodyHeight+ui.FooterHeight)
	m.transition.SetWidth(m.width)
	m.renderer = slides.NewRenderer(m.styles, m.width, m.bodyHeight())
	return m
}

func (m deckModel) bodyHeight() int {
	return max(m.height-ui.HeaderHeight-ui.FooterHeight, ui.MinBodyHeight)
}

// controlRow is the screen row of the footer buttons.
func (m deckModel) controlRow() int {
	return ui.HeaderHeight + m.bodyHeight()
}

// controls lays out the footer buttons, right aligned. View and mouse hit
// testing share this layout.
func (m deckModel) controls() []control {
	var cs []control
	if m.canReplay() {
		cs = append(cs, control{kind: controlReplay, label: "↺ " + m.replayLabel(), enabled: true})
	}
	cs = append(cs,
		control{kind: controlPrev, label: "← Prev", enabled: m.nav.CanRetreat()},
		control{kind: controlNext, label: "Next →", enabled: m.nav.CanAdvance()},
	)

	total := 0
	for i := range cs {
		cs[i].width = lipgloss.Width(m.styles.Button.Render(cs[i].label))
		total += cs[i].width
	}
	total += ui.ButtonGap * (len(cs) - 1)

	x := max(m.width-2-total, 0)
	for i := range cs {
		cs[i].x = x
		x += cs[i].width + ui.ButtonGap
	}
	return cs
}

func (m deckModel) View() string {
	if m.quitting {
		return ""
	}

	header := ansi.Truncate(m.styles.Header.Render(strings.ToUpper(m.deck.Title())), m.width, "…")

	return strings.Join([]string{
		header,
		"",
		m.viewBody(),
		m.viewControls(),
		m.progress.WithPosition(m.nav.Index(), m.nav.Len()).WithWidth(m.width).View(),
	}, "\n")
}

func (m deckModel) viewBody() string {
	s, ok := m.deck.Slide(m.transition.Visible())
	if !ok {
		s = deck.Slide{}
	}

	body := lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, m.renderer.Render(s))
	if !m.transition.Moving() {
		return body
	}

	body = shiftBlock(body, m.transition.Offset(), m.width)
	lines := strings.Split(body, "\n")
	faint := lipgloss.NewStyle().Faint(true)
	for i, line := range lines {
		lines[i] = faint.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (m deckModel) viewControls() string {
	cs := m.controls()

	var buttons []string
	for i, c := range cs {
		if i > 0 {
			buttons = append(buttons, strings.Repeat(" ", ui.ButtonGap))
		}
		style := m.styles.Button
		switch {
		case !c.enabled:
			style = m.styles.ButtonDisabled
		case c.kind == controlReplay:
			style = m.styles.ButtonPrimary
		}
		buttons = append(buttons, style.Render(c.label))
	}

	room := cs[0].x
	counter := m.styles.Counter.Render(m.progress.WithPosition(m.nav.Index(), m.nav.Len()).Counter())

	h := m.help
	h.Width = max(room-lipgloss.Width(counter)-3, 0)
	left := counter + "  " + h.ShortHelpView(m.activeKeys().ShortHelp())
	left = ansi.Truncate(left, max(room-1, 0), "")
	if pad := room - lipgloss.Width(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}

	return left + strings.Join(buttons, "")
}

// result summarises the session for the caller.
func (m deckModel) result() *DeckResult {
	visited := 0
	for _, v := range m.visited {
		if v {
			visited++
		}
	}
	return &DeckResult{
		LastIndex: m.nav.Index(),
		Visited:   visited,
		Replays:   m.replays,
	}
}
