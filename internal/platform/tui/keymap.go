package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chemdash/internal/core"
)

// actionKeys binds key strings to actions. Quit keys are handled first and
// never reach this table.
var actionKeys = map[string]core.Action{
	"w":     core.ActionUp,
	"up":    core.ActionUp,
	"s":     core.ActionDown,
	"down":  core.ActionDown,
	" ":     core.ActionJump,
	"enter": core.ActionConfirm,
	"b":     core.ActionBack,
	"esc":   core.ActionBack,
	"p":     core.ActionPause,
	"r":     core.ActionRestart,
}

// playRemap rewrites actions while a run is on screen: the runner has no
// vertical movement, so up jumps.
var playRemap = map[core.Action]core.Action{
	core.ActionUp: core.ActionJump,
}

func isQuitKey(key string) bool {
	return key == "ctrl+c" || key == "q"
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action and reports whether it is a
// quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()
	if isQuitKey(key) {
		return core.ActionQuit, true
	}
	if a, ok := actionKeys[key]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds the gameplay action for msg to frame and reports
// whether it was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action == core.ActionNone {
		return isQuit
	}
	if r, ok := playRemap[action]; ok {
		action = r
	}
	frame.Set(action)
	return isQuit
}

// MenuAction is an action on the difficulty menu or the scoreboard.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var menuKeys = map[string]MenuAction{
	"w":     MenuActionUp,
	"up":    MenuActionUp,
	"k":     MenuActionUp,
	"s":     MenuActionDown,
	"down":  MenuActionDown,
	"j":     MenuActionDown,
	"enter": MenuActionSelect,
	" ":     MenuActionSelect,
	"b":     MenuActionBack,
	"esc":   MenuActionBack,
	"tab":   MenuActionScoreboard,
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()
	if isQuitKey(key) {
		return MenuActionQuit
	}
	return menuKeys[key]
}
