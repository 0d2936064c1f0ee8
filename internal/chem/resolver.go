package chem

import "slices"

// FormedMolecule records one completed compound. It is never mutated after
// creation.
type FormedMolecule struct {
	Formula     string
	Name        string
	Points      int
	SymbolsUsed []Symbol
}

// Result is the outcome of one Resolve call.
type Result struct {
	Formed    *FormedMolecule // nil when nothing could be formed
	Remaining []Symbol
}

// Resolve forms at most one molecule from collected: the highest-point entry
// whose atoms are all present. The earliest occurrence of each consumed
// symbol is removed and the rest keep their order. collected is not modified.
func (c *Catalog) Resolve(collected []Symbol) Result {
	if len(collected) == 0 {
		return Result{Remaining: slices.Clone(collected)}
	}

	have := make(map[Symbol]int, len(collected))
	for _, s := range collected {
		have[s]++
	}

	for i := range c.entries {
		e := &c.entries[i]
		if !covers(have, e.required) {
			continue
		}
		return Result{
			Formed: &FormedMolecule{
				Formula:     e.Formula,
				Name:        e.Name,
				Points:      e.Points,
				SymbolsUsed: slices.Clone(e.Elements),
			},
			Remaining: removeFirst(collected, e.required),
		}
	}

	return Result{Remaining: slices.Clone(collected)}
}

func covers(have, need map[Symbol]int) bool {
	for s, n := range need {
		if have[s] < n {
			return false
		}
	}
	return true
}

func removeFirst(collected []Symbol, need map[Symbol]int) []Symbol {
	left := make(map[Symbol]int, len(need))
	for s, n := range need {
		left[s] = n
	}

	out := make([]Symbol, 0, len(collected))
	for _, s := range collected {
		if left[s] > 0 {
			left[s]--
			continue
		}
		out = append(out, s)
	}
	return out
}
