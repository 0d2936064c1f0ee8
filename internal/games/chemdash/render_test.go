package chemdash

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chemdash/internal/core"
)

func TestRenderSnapshotDrawsHUDAndEntities(t *testing.T) {
	h := newQuietHarness(t)
	h.settle(t)
	h.pickUp(t, "Na")
	h.s.obstacles = []*Obstacle{NewObstacle(ObstacleWall, 400, 180, 30, 200)}
	h.s.platforms = []*Platform{NewPlatform(PlatformGlass, 200, 250, 200, 15)}

	screen := core.NewScreen(80, 24)
	var buf bytes.Buffer
	RenderSnapshot(screen, h.s.Snapshot(), log.New(&buf))

	out := screen.String()
	for _, want := range []string{"Score: 50", "Level: 1", "[MEDIUM]", "Elements: Na", "█", "≡", "▀"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}

func TestRenderRecoversFromBadEntity(t *testing.T) {
	h := newQuietHarness(t)
	snap := h.s.Snapshot()
	snap.Obstacles = append(snap.Obstacles, ObstacleView{
		Body: Body{X: 400, Y: 300, W: 40, H: 40},
		Kind: ObstacleKind(99),
	})

	screen := core.NewScreen(80, 24)
	var buf bytes.Buffer
	RenderSnapshot(screen, snap, log.New(&buf))

	if !strings.ContainsRune(screen.String(), FallbackChar) {
		t.Error("fallback shape not drawn")
	}
	if !strings.Contains(buf.String(), "render failed") {
		t.Errorf("fallback not logged: %q", buf.String())
	}
	if !strings.Contains(screen.String(), "Score: 0") {
		t.Error("frame aborted after the bad entity")
	}
}

func TestRenderOverlays(t *testing.T) {
	h := newQuietHarness(t)
	screen := core.NewScreen(80, 24)

	h.s.TogglePause()
	RenderSnapshot(screen, h.s.Snapshot(), nil)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}

	h.s.TogglePause()
	h.s.lives = 1
	h.settle(t)
	h.hitPlayer(ObstacleAcid)
	RenderSnapshot(screen, h.s.Snapshot(), nil)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestRenderHidesVanishedPlatform(t *testing.T) {
	snap := Snapshot{
		World:     newQuietHarness(t).s.cfg.World,
		Platforms: []PlatformView{{Body: Body{X: 100, Y: 200, W: 200, H: 15}, Kind: PlatformDisappearing, Visible: false}},
	}
	screen := core.NewScreen(80, 24)
	RenderSnapshot(screen, snap, nil)
	if strings.ContainsRune(screen.String(), PlatformChar) {
		t.Error("invisible platform drawn")
	}
}
