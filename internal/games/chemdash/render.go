package chemdash

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chemdash/internal/chem"
	"github.com/vovakirdan/chemdash/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	GroundChar   = '▀'
	PlatformChar = '▬'
	GlowChar     = '≡'
	FallbackChar = '▒'
)

const (
	hudRows         = 2     // Score line and inventory line above the lane
	invulnBlinkRate = 100.0 // ms per blink phase while invulnerable
)

// painter maps lane coordinates onto terminal cells.
type painter struct {
	dst    *core.Screen
	logger *log.Logger
	sx, sy float64
	top    int
}

func newPainter(dst *core.Screen, snap Snapshot, logger *log.Logger) painter {
	laneRows := max(dst.Height()-hudRows, 1)
	return painter{
		dst:    dst,
		logger: logger,
		sx:     float64(dst.Width()) / snap.World.Width,
		sy:     float64(laneRows) / snap.World.Height,
		top:    hudRows,
	}
}

// cell converts a body to a cell rectangle at least one cell in size.
func (p painter) cell(b Body) core.Rect {
	x0 := int(math.Floor(b.X * p.sx))
	y0 := p.top + int(math.Floor(b.Y*p.sy))
	x1 := int(math.Ceil((b.X + b.W) * p.sx))
	y1 := p.top + int(math.Ceil((b.Y+b.H)*p.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func (p painter) row(y float64) int {
	return p.top + int(math.Floor(y*p.sy))
}

// safely runs draw and, if it panics, logs and paints a plain rectangle so
// the rest of the frame still renders.
func (p painter) safely(what string, b Body, c core.Color, draw func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("render failed, drawing fallback", "entity", what, "panic", r)
			p.dst.DrawRect(p.cell(b), FallbackChar, c)
		}
	}()
	draw()
}

// RenderSnapshot draws a snapshot and its HUD onto dst.
func RenderSnapshot(dst *core.Screen, snap Snapshot, logger *log.Logger) {
	dst.Clear()
	if snap.World.Width <= 0 || snap.World.Height <= 0 {
		return
	}
	if logger == nil {
		logger = log.Default()
	}
	p := newPainter(dst, snap, logger)

	ground := p.row(snap.World.GroundLevel())
	for y := ground; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorTeal)
	}

	for _, pl := range snap.Platforms {
		p.safely("platform "+pl.Kind.String(), pl.Body, core.ColorGreen, func() { p.drawPlatform(pl) })
	}
	for _, o := range snap.Obstacles {
		p.safely("obstacle "+o.Kind.String(), o.Body, core.ColorRed, func() { p.drawObstacle(o) })
	}
	for _, c := range snap.Collectibles {
		p.safely("element "+string(c.Symbol), c.Body, core.ColorOrange, func() { p.drawCollectible(c) })
	}
	p.safely("player", snap.Player.Body, core.ColorTeal, func() { p.drawPlayer(snap) })

	drawHUD(dst, snap)

	switch snap.State {
	case StatePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateStopped:
		if snap.Lives == 0 {
			drawCenteredMessage(dst, "GAME OVER",
				fmt.Sprintf("Score: %d  |  R restart  |  B menu", snap.Score))
		}
	}
}

func (p painter) drawPlatform(pl PlatformView) {
	if !pl.Visible {
		return
	}
	ch := PlatformChar
	if pl.Glow {
		ch = GlowChar
	}
	p.dst.DrawRect(p.cell(pl.Body), ch, core.ColorFromHex(pl.Kind.Color()))
}

func (p painter) drawObstacle(o ObstacleView) {
	p.dst.DrawRect(p.cell(o.Body), obstacleGlyph(o.Kind), core.ColorFromHex(o.Kind.Color()))
}

// obstacleGlyph picks the fill character for each kind.
func obstacleGlyph(k ObstacleKind) rune {
	switch k {
	case ObstacleBeaker:
		return 'U'
	case ObstacleAcid:
		return '~'
	case ObstacleBurner:
		return '^'
	case ObstacleFlask:
		return 'A'
	case ObstacleWall:
		return '█'
	case ObstacleBarrier:
		return '║'
	case ObstacleHorizontalBar:
		return '═'
	case ObstacleMovingSpike:
		return '▲'
	case ObstacleSwingingBlade:
		return '/'
	case ObstacleFloatingMine:
		return '✱'
	default:
		panic(fmt.Sprintf("chemdash: no glyph for obstacle kind %d", int(k)))
	}
}

func (p painter) drawCollectible(c CollectibleView) {
	r := p.cell(c.Body)
	color := core.ColorFromHex(c.Color)
	p.dst.DrawTextColored(r.X, r.Y, string(c.Symbol), color)
}

func (p painter) drawPlayer(snap Snapshot) {
	invulnerable := snap.Invulnerable || snap.BonusInvulnerable
	if invulnerable && int(snap.Clock/invulnBlinkRate)%2 == 1 {
		return
	}
	color := core.ColorTeal
	if snap.BonusInvulnerable {
		color = core.ColorBrightYellow
	}
	r := p.cell(snap.Player.Body)
	p.dst.DrawRect(r, PlayerChar, color)

	if label := snap.Player.Molecule.Formula; label != "" && r.Y > hudRows {
		p.dst.DrawTextColored(r.X, r.Y-1, label, core.ColorBrightWhite)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	lives := strings.Repeat("♥", max(snap.Lives, 0))
	status := fmt.Sprintf(" Score: %d  Level: %d  Lives: %s  Speed: %.1f ",
		snap.Score, snap.Level, lives, snap.Speed)
	dst.DrawTextColored(0, 0, status, core.ColorBrightWhite)

	diff := fmt.Sprintf("[%s] ", strings.ToUpper(string(snap.Difficulty)))
	var flags []string
	if snap.BonusInvulnerable {
		flags = append(flags, "SHIELD")
	}
	if snap.Slowed {
		flags = append(flags, "SLOW")
	}
	if len(flags) > 0 {
		diff = strings.Join(flags, " ") + " " + diff
	}
	dst.DrawTextColored(dst.Width()-len([]rune(diff)), 0, diff, core.ColorYellow)

	inv := " Elements: " + chem.FormatInventory(snap.Inventory)
	dst.DrawTextColored(0, 1, inv, core.ColorCyan)
	if m := snap.LastMolecule; m != nil {
		formed := fmt.Sprintf("%s (%s) +%d ", m.Formula, m.Name, m.Points)
		dst.DrawTextColored(dst.Width()-len([]rune(formed)), 1, formed, core.ColorBrightGreen)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorWhite)
}
