package chemdash

import "github.com/vovakirdan/chemdash/internal/config"

// Physics holds the gravity constants. Velocities are expressed per
// reference frame, so every update is scaled by dt/ReferenceStep.
type Physics struct {
	Gravity          float64
	TerminalVelocity float64
	ReferenceStep    float64 // ms
}

// NewPhysics builds the physics constants from config.
func NewPhysics(cfg config.PhysicsConfig) Physics {
	ref := cfg.ReferenceStepMs
	if ref <= 0 {
		ref = 16.67
	}
	return Physics{
		Gravity:          cfg.Gravity,
		TerminalVelocity: cfg.TerminalVelocity,
		ReferenceStep:    ref,
	}
}

func (p Physics) scale(dt float64) float64 {
	return dt / p.ReferenceStep
}

// ApplyGravity accelerates the body downward, capped at terminal velocity.
func (p Physics) ApplyGravity(b *Body, dt float64) {
	b.VY += p.Gravity * p.scale(dt)
	if b.VY > p.TerminalVelocity {
		b.VY = p.TerminalVelocity
	}
}

// Integrate moves the body by its velocity.
func (p Physics) Integrate(b *Body, dt float64) {
	s := p.scale(dt)
	b.X += b.VX * s
	b.Y += b.VY * s
}
