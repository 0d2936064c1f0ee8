// Package chem holds the chemistry data the game plays with: the element
// table collectibles are drawn from, the molecule catalog, and the resolver
// that turns collected symbols into scored compounds.
package chem

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Symbol is a chemical element symbol such as "H" or "Cl".
type Symbol string

// Element is the display and spawn data for one collectible element.
type Element struct {
	Symbol       Symbol  `yaml:"symbol"`
	Name         string  `yaml:"name"`
	AtomicNumber int     `yaml:"atomic_number"`
	Color        string  `yaml:"color"`
	Category     string  `yaml:"category"`
	Weight       float64 `yaml:"weight"`
}

// ElementTable is the immutable set of elements that can spawn.
type ElementTable struct {
	elements []Element
	index    map[Symbol]int
}

// NewElementTable validates the elements and builds a lookup table.
func NewElementTable(elements []Element) (*ElementTable, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("chem: element table is empty")
	}

	t := &ElementTable{
		elements: make([]Element, len(elements)),
		index:    make(map[Symbol]int, len(elements)),
	}
	copy(t.elements, elements)

	for i, e := range t.elements {
		if e.Symbol == "" {
			return nil, fmt.Errorf("chem: element %d has no symbol", i)
		}
		if _, dup := t.index[e.Symbol]; dup {
			return nil, fmt.Errorf("chem: duplicate element %q", e.Symbol)
		}
		if e.Weight <= 0 {
			return nil, fmt.Errorf("chem: element %q has non-positive weight %v", e.Symbol, e.Weight)
		}
		t.index[e.Symbol] = i
	}
	return t, nil
}

// Lookup returns the element for a symbol.
func (t *ElementTable) Lookup(sym Symbol) (Element, bool) {
	i, ok := t.index[sym]
	if !ok {
		return Element{}, false
	}
	return t.elements[i], true
}

// All returns the elements in table order.
func (t *ElementTable) All() []Element {
	return slices.Clone(t.elements)
}

// Len returns the number of elements.
func (t *ElementTable) Len() int {
	return len(t.elements)
}

// Picker draws elements from a weighted ticket distribution. Each element
// gets round(weight*10) tickets after the bias is applied.
type Picker struct {
	elements   []Element
	cumulative []int
	total      int
}

// NewPicker builds a picker over the table. bias reshapes the weights as
// 1 + (w-1)*bias: above 1 favors common elements, below 1 flattens toward
// uniform.
func NewPicker(t *ElementTable, bias float64) *Picker {
	p := &Picker{
		elements:   t.All(),
		cumulative: make([]int, t.Len()),
	}
	for i, e := range p.elements {
		w := 1 + (e.Weight-1)*bias
		tickets := max(1, int(math.Round(w*10)))
		p.total += tickets
		p.cumulative[i] = p.total
	}
	return p
}

// Pick returns one element drawn with rng.
func (p *Picker) Pick(rng *rand.Rand) Element {
	n := rng.Intn(p.total)
	i := sort.SearchInts(p.cumulative, n+1)
	return p.elements[i]
}

// Tickets returns the ticket count for a symbol, or 0 if it is unknown.
func (p *Picker) Tickets(sym Symbol) int {
	prev := 0
	for i, e := range p.elements {
		if e.Symbol == sym {
			return p.cumulative[i] - prev
		}
		prev = p.cumulative[i]
	}
	return 0
}

// FormatInventory summarizes symbols in Hill order (C, H, then alphabetical)
// with counts, e.g. "C2 H5 O".
func FormatInventory(symbols []Symbol) string {
	if len(symbols) == 0 {
		return ""
	}

	counts := make(map[Symbol]int)
	for _, s := range symbols {
		counts[s]++
	}

	keys := make([]Symbol, 0, len(counts))
	for s := range counts {
		keys = append(keys, s)
	}
	sort.Slice(keys, func(i, j int) bool {
		return hillRank(keys[i]) < hillRank(keys[j]) ||
			(hillRank(keys[i]) == hillRank(keys[j]) && keys[i] < keys[j])
	})

	parts := make([]string, 0, len(keys))
	for _, s := range keys {
		part := string(s)
		if counts[s] > 1 {
			part += strconv.Itoa(counts[s])
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

func hillRank(s Symbol) int {
	switch s {
	case "C":
		return 0
	case "H":
		return 1
	default:
		return 2
	}
}
