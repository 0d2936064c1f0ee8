package chem

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/elements.yaml
var defaultElementsYAML []byte

//go:embed data/molecules.yaml
var defaultMoleculesYAML []byte

// Molecule is one catalog entry.
type Molecule struct {
	Formula  string   `yaml:"formula"`
	Name     string   `yaml:"name"`
	Elements []Symbol `yaml:"elements"`
	Points   int      `yaml:"points"`
}

// Catalog is the immutable molecule catalog. Entries are kept in resolver
// order: points descending, then formula ascending.
type Catalog struct {
	entries []catalogEntry
}

type catalogEntry struct {
	Molecule
	required map[Symbol]int
}

type elementsFile struct {
	Elements []Element `yaml:"elements"`
}

type moleculesFile struct {
	Molecules []Molecule `yaml:"molecules"`
}

// NewCatalog validates the molecules and builds a catalog. Any malformed
// entry is an error; the catalog is static data and must be fixed at the source.
func NewCatalog(molecules []Molecule) (*Catalog, error) {
	if len(molecules) == 0 {
		return nil, fmt.Errorf("chem: molecule catalog is empty")
	}

	seen := make(map[string]bool, len(molecules))
	entries := make([]catalogEntry, 0, len(molecules))
	for i, m := range molecules {
		if m.Formula == "" {
			return nil, fmt.Errorf("chem: molecule %d has no formula", i)
		}
		if seen[m.Formula] {
			return nil, fmt.Errorf("chem: duplicate molecule %q", m.Formula)
		}
		seen[m.Formula] = true
		if len(m.Elements) == 0 {
			return nil, fmt.Errorf("chem: molecule %q requires no atoms", m.Formula)
		}
		if m.Points <= 0 {
			return nil, fmt.Errorf("chem: molecule %q has non-positive points %d", m.Formula, m.Points)
		}

		required := make(map[Symbol]int)
		for _, s := range m.Elements {
			if s == "" {
				return nil, fmt.Errorf("chem: molecule %q has an empty symbol", m.Formula)
			}
			required[s]++
		}

		m.Elements = slices.Clone(m.Elements)
		entries = append(entries, catalogEntry{Molecule: m, required: required})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].Formula < entries[j].Formula
	})

	return &Catalog{entries: entries}, nil
}

// Len returns the number of molecules.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Molecules returns the catalog in resolver order.
func (c *Catalog) Molecules() []Molecule {
	out := make([]Molecule, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Molecule
		out[i].Elements = slices.Clone(e.Elements)
	}
	return out
}

// LoadCatalog reads a molecule catalog from a YAML file. An empty path
// loads the embedded catalog.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultMoleculesYAML
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("chem: failed to read catalog %s: %w", path, err)
		}
		data = raw
	}

	var f moleculesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("chem: failed to parse catalog: %w", err)
	}
	return NewCatalog(f.Molecules)
}

// LoadElements reads an element table from a YAML file. An empty path
// loads the embedded table.
func LoadElements(path string) (*ElementTable, error) {
	data := defaultElementsYAML
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("chem: failed to read elements %s: %w", path, err)
		}
		data = raw
	}

	var f elementsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("chem: failed to parse elements: %w", err)
	}
	return NewElementTable(f.Elements)
}

// DefaultCatalog returns the embedded catalog. It panics if the embedded
// data is invalid, which can only happen with a broken build.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog("")
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultElements returns the embedded element table.
func DefaultElements() *ElementTable {
	t, err := LoadElements("")
	if err != nil {
		panic(err)
	}
	return t
}
