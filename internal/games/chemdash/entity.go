package chemdash

import (
	"fmt"
	"math"

	"github.com/vovakirdan/chemdash/internal/core"
)

// Body is the position, size and velocity shared by every entity.
// Coordinates are lane pixels with y growing downward.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
}

// Bounds returns the collision box.
func (b Body) Bounds() core.AABB {
	return core.AABB{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Bottom returns the y coordinate of the lower edge.
func (b Body) Bottom() float64 {
	return b.Y + b.H
}

// OffScreen reports whether the body has scrolled past the left edge.
func (b Body) OffScreen() bool {
	return b.X+b.W < 0
}

// MotionKind selects the closed-form path of a moving entity.
type MotionKind int

const (
	MotionVertical MotionKind = iota
	MotionHorizontal
	MotionCircular
	MotionPendulum
)

func (k MotionKind) String() string {
	switch k {
	case MotionVertical:
		return "vertical"
	case MotionHorizontal:
		return "horizontal"
	case MotionCircular:
		return "circular"
	case MotionPendulum:
		return "pendulum"
	default:
		return fmt.Sprintf("MotionKind(%d)", int(k))
	}
}

// Motion moves an entity along a path relative to a scrolling origin.
// OriginX follows the lane scroll, so the entity's displacement per step is
// exactly the scroll plus the change in path offset.
type Motion struct {
	Kind    MotionKind
	Speed   float64
	Range   float64
	OriginX float64
	OriginY float64
	Time    float64 // seconds
}

// newMotion anchors a path at the body's current position and places the
// body at the path's starting offset.
func newMotion(kind MotionKind, speed, rng float64, b *Body) *Motion {
	m := &Motion{Kind: kind, Speed: speed, Range: rng, OriginX: b.X, OriginY: b.Y}
	m.place(b)
	return m
}

// Step advances the path by dt milliseconds after the lane scrolled by scroll.
func (m *Motion) Step(b *Body, dt, scroll float64) {
	m.OriginX -= scroll
	m.Time += dt * 0.001
	m.place(b)
}

func (m *Motion) place(b *Body) {
	dx, dy := m.Offset()
	b.X = m.OriginX + dx
	b.Y = m.OriginY + dy
}

// Offset returns the displacement from the origin at the current time.
func (m *Motion) Offset() (dx, dy float64) {
	phase := m.Time * m.Speed
	switch m.Kind {
	case MotionVertical:
		return 0, math.Sin(phase) * m.Range
	case MotionHorizontal:
		return math.Sin(phase) * m.Range, 0
	case MotionCircular:
		return math.Cos(phase) * m.Range, math.Sin(phase) * m.Range
	case MotionPendulum:
		angle := math.Sin(phase) * math.Pi / 3
		return math.Sin(angle) * m.Range, math.Cos(angle) * m.Range
	default:
		panic(fmt.Sprintf("chemdash: unknown motion kind %d", int(m.Kind)))
	}
}

// advance scrolls a body and runs its motion, if any.
func advance(b *Body, m *Motion, dt, scroll float64) {
	if m == nil {
		b.X -= scroll
		return
	}
	m.Step(b, dt, scroll)
}
