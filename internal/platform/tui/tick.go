// Package tui provides the Bubble Tea integration for Chemistry Dash.
// It drives display frames, maps keys to actions and persists scores.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultFPS = 60
	maxFPS     = 240
)

// TickMsg carries the wall time of a display frame. The game model turns it
// into elapsed time since the run started.
type TickMsg time.Time

// frameInterval returns the display frame period for fps, clamped to
// [1, maxFPS]. Zero or negative means the default.
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = defaultFPS
	}
	return time.Second / time.Duration(min(fps, maxFPS))
}

// tickCmd schedules the next display frame.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
