package chemdash

import (
	"slices"

	"github.com/vovakirdan/chemdash/internal/chem"
	"github.com/vovakirdan/chemdash/internal/config"
)

// PlayerView is the drawable state of the player.
type PlayerView struct {
	Body
	Grounded       bool
	JumpsRemaining int
	Level          int
	Molecule       chem.PlayerMolecule
}

// ObstacleView is the drawable state of an obstacle.
type ObstacleView struct {
	Body
	Kind         ObstacleKind
	Danger       DangerLevel
	Impenetrable bool
}

// PlatformView is the drawable state of a platform.
type PlatformView struct {
	Body
	Kind    PlatformKind
	Glow    bool
	Visible bool
}

// CollectibleView is the drawable state of an element pickup.
type CollectibleView struct {
	Body
	Symbol chem.Symbol
	Color  string
}

// Snapshot is a read-only copy of everything a renderer needs. It shares no
// memory with the session.
type Snapshot struct {
	State        State
	Difficulty   config.Difficulty
	World        config.WorldConfig
	Clock        float64
	Player       PlayerView
	Obstacles    []ObstacleView
	Platforms    []PlatformView
	Collectibles []CollectibleView

	Score int
	Level int
	Lives int
	Speed float64

	Inventory    []chem.Symbol
	LastMolecule *chem.FormedMolecule

	Invulnerable      bool
	BonusInvulnerable bool
	Slowed            bool
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:      s.state,
		Difficulty: s.difficulty,
		World:      s.cfg.World,
		Clock:      s.clock,
		Score:      s.score,
		Level:      s.level,
		Lives:      s.lives,
		Speed:      s.speed,
		Inventory:  slices.Clone(s.inventory),

		Invulnerable:      s.clock < s.invulnerableUntil,
		BonusInvulnerable: s.clock < s.bonusInvulnerableUntil,
		Slowed:            s.clock < s.slowUntil,
	}

	if s.player != nil {
		snap.Player = PlayerView{
			Body:           s.player.Body,
			Grounded:       s.player.Grounded,
			JumpsRemaining: s.player.JumpsRemaining,
			Level:          s.player.CurrentLevel,
			Molecule:       chem.PlayerMoleculeForLevel(s.player.CurrentLevel),
		}
	}

	snap.Obstacles = make([]ObstacleView, 0, len(s.obstacles))
	for _, o := range s.obstacles {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{
			Body:         o.Body,
			Kind:         o.Kind,
			Danger:       o.Danger(),
			Impenetrable: o.Impenetrable(),
		})
	}

	snap.Platforms = make([]PlatformView, 0, len(s.platforms))
	for _, p := range s.platforms {
		snap.Platforms = append(snap.Platforms, PlatformView{
			Body:    p.Body,
			Kind:    p.Kind,
			Glow:    p.Glow(),
			Visible: p.Visible(),
		})
	}

	snap.Collectibles = make([]CollectibleView, 0, len(s.collectibles))
	for _, c := range s.collectibles {
		snap.Collectibles = append(snap.Collectibles, CollectibleView{
			Body:   c.Body,
			Symbol: c.Symbol,
			Color:  c.Element.Color,
		})
	}

	if s.lastMolecule != nil {
		m := cloneFormed(*s.lastMolecule)
		snap.LastMolecule = &m
	}
	return snap
}

func cloneFormed(m chem.FormedMolecule) chem.FormedMolecule {
	m.SymbolsUsed = slices.Clone(m.SymbolsUsed)
	return m
}
