package chemdash

import (
	"github.com/vovakirdan/chemdash/internal/chem"
	"github.com/vovakirdan/chemdash/internal/config"
)

// Player is the runner. It only moves vertically; the lane scrolls past it.
type Player struct {
	Body
	Grounded       bool
	JumpsRemaining int
	MaxJumps       int
	JumpPower      float64
	CurrentLevel   int
	Molecule       chem.PlayerMolecule // Decorative, keyed by level
}

// NewPlayer creates a player at (x, y).
func NewPlayer(cfg config.PlayerConfig, x, y float64) *Player {
	p := &Player{
		Body:      Body{X: x, Y: y, W: cfg.Width, H: cfg.Height},
		MaxJumps:  max(cfg.MaxJumps, 0),
		JumpPower: cfg.JumpPower,
	}
	p.JumpsRemaining = p.MaxJumps
	p.SetLevel(1)
	return p
}

// Jump launches the player upward. A jump from the ground is free; each jump
// in the air spends one of the remaining jumps.
func (p *Player) Jump() bool {
	if !p.Grounded && p.JumpsRemaining <= 0 {
		return false
	}
	p.VY = p.JumpPower
	if !p.Grounded {
		p.JumpsRemaining = max(p.JumpsRemaining-1, 0)
	}
	p.Grounded = false
	return true
}

// Update applies gravity and moves the player. Grounded is always cleared;
// the landing pass re-asserts it within the same step.
func (p *Player) Update(dt float64, phys Physics) {
	phys.ApplyGravity(&p.Body, dt)
	phys.Integrate(&p.Body, dt)
	p.Grounded = false
}

// Land rests the player's bottom edge on surfaceY.
func (p *Player) Land(surfaceY float64) {
	p.Y = surfaceY - p.H
	p.VY = 0
	p.Grounded = true
	p.JumpsRemaining = p.MaxJumps
}

// Respawn puts the player back at the start position at rest.
func (p *Player) Respawn(x, y float64) {
	p.X, p.Y = x, y
	p.VX, p.VY = 0, 0
	p.Grounded = false
	p.JumpsRemaining = p.MaxJumps
}

// SetLevel updates the level and the molecule the sprite wears.
func (p *Player) SetLevel(level int) {
	p.CurrentLevel = max(level, 1)
	p.Molecule = chem.PlayerMoleculeForLevel(p.CurrentLevel)
}
