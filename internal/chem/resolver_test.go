package chem

import (
	"slices"
	"strings"
	"testing"
)

func syms(s ...string) []Symbol {
	out := make([]Symbol, len(s))
	for i, v := range s {
		out[i] = Symbol(v)
	}
	return out
}

func mustCatalog(t *testing.T, molecules ...Molecule) *Catalog {
	t.Helper()
	c, err := NewCatalog(molecules)
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	return c
}

var (
	water    = Molecule{Formula: "H2O", Name: "Water", Elements: syms("H", "H", "O"), Points: 150}
	methane  = Molecule{Formula: "CH4", Name: "Methane", Elements: syms("C", "H", "H", "H", "H"), Points: 250}
	peroxide = Molecule{Formula: "H2O2", Name: "Hydrogen Peroxide", Elements: syms("H", "H", "O", "O"), Points: 200}
)

func TestResolveFormsWater(t *testing.T) {
	c := mustCatalog(t, water)

	res := c.Resolve(syms("H", "H", "O"))
	if res.Formed == nil {
		t.Fatal("expected H2O to be formed")
	}
	if res.Formed.Formula != "H2O" || res.Formed.Points != 150 {
		t.Errorf("formed = %+v, expected H2O worth 150", res.Formed)
	}
	if len(res.Remaining) != 0 {
		t.Errorf("remaining = %v, expected empty", res.Remaining)
	}
}

func TestResolveNoMatchLeavesInventory(t *testing.T) {
	c := mustCatalog(t, water)

	collected := syms("H")
	res := c.Resolve(collected)
	if res.Formed != nil {
		t.Fatalf("expected no molecule, got %+v", res.Formed)
	}
	if !slices.Equal(res.Remaining, syms("H")) {
		t.Errorf("remaining = %v, expected [H]", res.Remaining)
	}
}

func TestResolvePrefersHighestSatisfiable(t *testing.T) {
	c := mustCatalog(t, water, methane, peroxide)

	res := c.Resolve(syms("H", "H", "H", "H", "O", "O"))
	if res.Formed == nil || res.Formed.Formula != "H2O2" {
		t.Fatalf("formed = %+v, expected H2O2", res.Formed)
	}
	if !slices.Equal(res.Remaining, syms("H", "H")) {
		t.Errorf("remaining = %v, expected [H H]", res.Remaining)
	}
}

func TestResolveFormsOnlyOneMolecule(t *testing.T) {
	c := mustCatalog(t, water)

	res := c.Resolve(syms("H", "H", "O", "H", "H", "O"))
	if res.Formed == nil {
		t.Fatal("expected a molecule")
	}
	if !slices.Equal(res.Remaining, syms("H", "H", "O")) {
		t.Errorf("remaining = %v, expected one unformed water's worth", res.Remaining)
	}
}

func TestResolvePreservesOrderOfUntouched(t *testing.T) {
	c := mustCatalog(t, water)

	res := c.Resolve(syms("Na", "H", "C", "O", "H", "Cl", "H"))
	if res.Formed == nil {
		t.Fatal("expected H2O")
	}
	// First two H and the first O are consumed.
	if !slices.Equal(res.Remaining, syms("Na", "C", "Cl", "H")) {
		t.Errorf("remaining = %v, expected [Na C Cl H]", res.Remaining)
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	c := mustCatalog(t, water)

	collected := syms("O", "H", "H", "C")
	before := slices.Clone(collected)
	c.Resolve(collected)
	if !slices.Equal(collected, before) {
		t.Errorf("input mutated: %v, expected %v", collected, before)
	}
}

func TestResolveEmpty(t *testing.T) {
	c := mustCatalog(t, water)

	res := c.Resolve(nil)
	if res.Formed != nil || len(res.Remaining) != 0 {
		t.Errorf("Resolve(nil) = %+v, expected no match and nothing remaining", res)
	}
}

func TestResolveTieBreaksByFormula(t *testing.T) {
	// Same points and same atoms: the lexically smaller formula wins.
	a := Molecule{Formula: "NO", Name: "Nitric Oxide", Elements: syms("N", "O"), Points: 100}
	b := Molecule{Formula: "ON", Name: "Reversed", Elements: syms("O", "N"), Points: 100}

	for i := 0; i < 5; i++ {
		c := mustCatalog(t, b, a)
		res := c.Resolve(syms("O", "N"))
		if res.Formed == nil || res.Formed.Formula != "NO" {
			t.Fatalf("formed = %+v, expected NO", res.Formed)
		}
	}
}

func TestFormedMoleculeIsIndependentOfCatalog(t *testing.T) {
	c := mustCatalog(t, water)

	res := c.Resolve(syms("H", "H", "O"))
	res.Formed.SymbolsUsed[0] = "X"

	again := c.Resolve(syms("H", "H", "O"))
	if again.Formed.SymbolsUsed[0] != "H" {
		t.Error("mutating a formed molecule leaked into the catalog")
	}
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name      string
		molecules []Molecule
		wantErr   string
	}{
		{"empty catalog", nil, "empty"},
		{"no atoms", []Molecule{{Formula: "X", Points: 10}}, "requires no atoms"},
		{"zero points", []Molecule{{Formula: "H2", Elements: syms("H", "H"), Points: 0}}, "non-positive points"},
		{"negative points", []Molecule{{Formula: "H2", Elements: syms("H", "H"), Points: -5}}, "non-positive points"},
		{"missing formula", []Molecule{{Elements: syms("H"), Points: 5}}, "no formula"},
		{"empty symbol", []Molecule{{Formula: "H?", Elements: syms("H", ""), Points: 5}}, "empty symbol"},
		{"duplicate", []Molecule{water, water}, "duplicate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.molecules)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, expected it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestDefaultCatalogOrder(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() < 100 {
		t.Fatalf("embedded catalog has %d molecules, expected the full set", c.Len())
	}

	ms := c.Molecules()
	for i := 1; i < len(ms); i++ {
		prev, cur := ms[i-1], ms[i]
		if prev.Points < cur.Points || (prev.Points == cur.Points && prev.Formula > cur.Formula) {
			t.Fatalf("catalog out of order at %d: %s(%d) before %s(%d)",
				i, prev.Formula, prev.Points, cur.Formula, cur.Points)
		}
	}
}

func TestDefaultCatalogResolvesCommonPickups(t *testing.T) {
	c := DefaultCatalog()

	res := c.Resolve(syms("Na", "Cl"))
	if res.Formed == nil || res.Formed.Formula != "NaCl" {
		t.Errorf("Na + Cl formed %+v, expected NaCl", res.Formed)
	}

	res = c.Resolve(syms("H", "H", "O"))
	if res.Formed == nil || res.Formed.Formula != "H2O" {
		t.Errorf("H + H + O formed %+v, expected H2O", res.Formed)
	}
}
