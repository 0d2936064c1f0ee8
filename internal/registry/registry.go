// Package registry maps game IDs to factories so the CLI and the SSH server
// can build fresh instances per player without importing the game package
// directly.
package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/chemdash/internal/core"
)

// Game is what the platform drives. Implementations are pure simulation:
// no terminal, no storage, no wall clock.
type Game interface {
	ID() string
	Title() string

	// Reset starts a new run sized for cfg.
	Reset(cfg core.RuntimeConfig)

	// Frame is called once per display frame with the monotonic time since
	// the platform started. The game runs as many fixed simulation steps as
	// the elapsed time allows.
	Frame(now time.Duration, in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Factory builds a new, un-reset game.
type Factory func() Game

// Entry describes a registered game.
type Entry struct {
	ID      string
	Title   string
	Factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]Entry)
)

// Register adds e. It panics on an empty ID, a nil factory or a duplicate,
// all of which are programming errors in an init function.
func Register(e Entry) {
	if e.ID == "" || e.Factory == nil {
		panic("registry: entry needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[e.ID]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", e.ID))
	}
	entries[e.ID] = e
}

// Lookup returns the entry for id.
func Lookup(id string) (Entry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e, ok
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Create builds a new instance of id.
func Create(id string) (Game, error) {
	e, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.Factory(), nil
}
