package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is one animation frame of a slide transition. Generation and
// Target identify the transition that scheduled it; frames of a superseded
// transition are stale.
type FrameMsg struct {
	Generation int
	Target     int
	Time       time.Time
}

// Frame schedules the next FrameMsg after interval.
func Frame(interval time.Duration, generation, target int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Generation: generation, Target: target, Time: t}
	})
}

// ReplayMsg asks the presentation to start again from the first slide.
type ReplayMsg struct{}
