package chemdash

import "github.com/vovakirdan/chemdash/internal/chem"

// Collectible is an element pickup.
type Collectible struct {
	Body
	Symbol  chem.Symbol
	Element chem.Element
}

// NewCollectible creates a pickup for el.
func NewCollectible(el chem.Element, x, y, w, h float64) *Collectible {
	return &Collectible{
		Body:    Body{X: x, Y: y, W: w, H: h},
		Symbol:  el.Symbol,
		Element: el,
	}
}

// Update scrolls the pickup.
func (c *Collectible) Update(dt, scroll float64) {
	advance(&c.Body, nil, dt, scroll)
}

// ShouldBeRemoved reports whether the pickup left the lane.
func (c *Collectible) ShouldBeRemoved() bool {
	return c.OffScreen()
}
