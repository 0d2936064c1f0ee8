package chemdash

import (
	"github.com/vovakirdan/chemdash/internal/chem"
	"github.com/vovakirdan/chemdash/internal/config"
)

// HUD receives discrete updates whenever a displayed value changes.
type HUD interface {
	OnScoreChanged(score int)
	OnLevelChanged(level int)
	OnLivesChanged(lives int)
	OnDifficultyChanged(d config.Difficulty)
	OnElementsChanged(inventory []chem.Symbol)
	OnMoleculeFormed(m chem.FormedMolecule)
	OnPauseChanged(paused bool)
}

// GameOverReport is the final state handed to the menu when a run ends.
type GameOverReport struct {
	Score             int
	Level             int
	Difficulty        config.Difficulty
	Inventory         []chem.Symbol
	Formed            []chem.FormedMolecule
	LivesRemaining    int
	ElementsCollected int
}

// Formulas returns the formed molecules' formulas in formation order.
func (r GameOverReport) Formulas() []string {
	out := make([]string, len(r.Formed))
	for i, m := range r.Formed {
		out[i] = m.Formula
	}
	return out
}

// Menu is told when a run ends.
type Menu interface {
	OnGameOver(report GameOverReport)
}

// Renderer draws a snapshot. It is called once per display frame.
type Renderer interface {
	Render(s Snapshot)
}

// NopHUD ignores every update. Embed it to implement only some methods.
type NopHUD struct{}

func (NopHUD) OnScoreChanged(int)                    {}
func (NopHUD) OnLevelChanged(int)                    {}
func (NopHUD) OnLivesChanged(int)                    {}
func (NopHUD) OnDifficultyChanged(config.Difficulty) {}
func (NopHUD) OnElementsChanged([]chem.Symbol)       {}
func (NopHUD) OnMoleculeFormed(chem.FormedMolecule)  {}
func (NopHUD) OnPauseChanged(bool)                   {}

// NopMenu ignores game over.
type NopMenu struct{}

func (NopMenu) OnGameOver(GameOverReport) {}

type nopRenderer struct{}

func (nopRenderer) Render(Snapshot) {}
