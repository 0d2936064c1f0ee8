package chemdash

import (
	"fmt"
	"math"
)

// PlatformKind selects a platform's look and behaviour.
type PlatformKind int

const (
	PlatformBasic PlatformKind = iota
	PlatformGlass
	PlatformMetal
	PlatformCrystal
	PlatformEnergy
	PlatformIce
	PlatformMovingVertical
	PlatformMovingHorizontal
	PlatformDisappearing
)

var platformNames = map[PlatformKind]string{
	PlatformBasic:            "basic",
	PlatformGlass:            "glass",
	PlatformMetal:            "metal",
	PlatformCrystal:          "crystal",
	PlatformEnergy:           "energy",
	PlatformIce:              "ice",
	PlatformMovingVertical:   "moving_vertical",
	PlatformMovingHorizontal: "moving_horizontal",
	PlatformDisappearing:     "disappearing",
}

func (k PlatformKind) String() string {
	if s, ok := platformNames[k]; ok {
		return s
	}
	return fmt.Sprintf("PlatformKind(%d)", int(k))
}

// ParsePlatformKind parses a config name such as "moving_vertical".
func ParsePlatformKind(s string) (PlatformKind, error) {
	for k, name := range platformNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("chemdash: unknown platform kind %q", s)
}

// Glow reports whether the kind is drawn with a glow.
func (k PlatformKind) Glow() bool {
	switch k {
	case PlatformGlass, PlatformCrystal, PlatformEnergy, PlatformIce:
		return true
	default:
		return false
	}
}

func (k PlatformKind) motion() (kind MotionKind, speed, rng float64, ok bool) {
	switch k {
	case PlatformMovingVertical:
		return MotionVertical, 1, 60, true
	case PlatformMovingHorizontal:
		return MotionHorizontal, 0.8, 80, true
	default:
		return 0, 0, 0, false
	}
}

// Color returns the kind's hex color.
func (k PlatformKind) Color() string {
	switch k {
	case PlatformBasic:
		return "#4ecca3"
	case PlatformGlass:
		return "#74b9ff"
	case PlatformMetal:
		return "#95a5a6"
	case PlatformCrystal:
		return "#a29bfe"
	case PlatformEnergy:
		return "#fdcb6e"
	case PlatformIce:
		return "#81ecec"
	case PlatformMovingVertical, PlatformMovingHorizontal:
		return "#e17055"
	case PlatformDisappearing:
		return "#fd79a8"
	default:
		return "#ffffff"
	}
}

const (
	disappearDelay = 1000.0 // ms from first landing until the platform is gone
	flashPeriod    = 200.0  // ms per visible/hidden half cycle
)

// Disappearing tracks a platform that vanishes after it is landed on.
type Disappearing struct {
	Delay   float64
	Timer   float64
	Landed  bool
	Visible bool
	Gone    bool
}

func (d *Disappearing) update(dt float64) {
	if !d.Landed || d.Gone {
		return
	}
	d.Timer += dt
	if d.Timer >= d.Delay {
		d.Gone = true
		d.Visible = false
		return
	}
	d.Visible = int(math.Floor(d.Timer/flashPeriod))%2 == 0
}

// Platform is a surface the player can land on from above.
type Platform struct {
	Body
	Kind         PlatformKind
	Motion       *Motion
	Disappearing *Disappearing

	prevY float64
}

// NewPlatform creates a platform of the given kind.
func NewPlatform(kind PlatformKind, x, y, w, h float64) *Platform {
	p := &Platform{Body: Body{X: x, Y: y, W: w, H: h}, Kind: kind}
	if mk, speed, rng, ok := kind.motion(); ok {
		p.Motion = newMotion(mk, speed, rng, &p.Body)
	}
	if kind == PlatformDisappearing {
		p.Disappearing = &Disappearing{Delay: disappearDelay, Visible: true}
	}
	p.prevY = p.Y
	return p
}

// Glow reports whether the platform is drawn with a glow.
func (p *Platform) Glow() bool {
	return p.Kind.Glow()
}

// Update scrolls the platform, runs its motion and its vanish timer.
func (p *Platform) Update(dt, scroll float64) {
	p.prevY = p.Y
	advance(&p.Body, p.Motion, dt, scroll)
	if p.Disappearing != nil {
		p.Disappearing.update(dt)
	}
}

// CanLandOn reports whether the player came down onto the top surface during
// the last step. prevBottom is the player's bottom edge before it moved.
func (p *Platform) CanLandOn(pl *Player, prevBottom float64) bool {
	if p.gone() {
		return false
	}
	if !pl.Bounds().OverlapsX(p.Bounds()) {
		return false
	}
	return pl.VY > 0 && prevBottom <= p.prevY && pl.Bottom() >= p.Y
}

// OnLanded starts the vanish timer on the first landing.
func (p *Platform) OnLanded() {
	d := p.Disappearing
	if d == nil || d.Landed {
		return
	}
	d.Landed = true
	d.Timer = 0
}

// Visible reports whether the platform should be drawn this frame.
func (p *Platform) Visible() bool {
	if p.Disappearing == nil {
		return true
	}
	return p.Disappearing.Visible
}

// ShouldBeRemoved reports whether the platform left the lane or vanished.
func (p *Platform) ShouldBeRemoved() bool {
	return p.OffScreen() || p.gone()
}

func (p *Platform) gone() bool {
	return p.Disappearing != nil && p.Disappearing.Gone
}
