package chem

// PlayerMolecule is the decorative atom cluster the player sprite wears.
// It grows with the level and has no effect on scoring.
type PlayerMolecule struct {
	Formula string
	Name    string
	Atoms   []Symbol
}

var playerMolecules = []PlayerMolecule{
	{Formula: "H", Name: "Hydrogen", Atoms: []Symbol{"H"}},
	{Formula: "H2", Name: "Hydrogen Gas", Atoms: []Symbol{"H", "H"}},
	{Formula: "H2O", Name: "Water", Atoms: []Symbol{"O", "H", "H"}},
	{Formula: "NH3", Name: "Ammonia", Atoms: []Symbol{"N", "H", "H", "H"}},
	{Formula: "CH4", Name: "Methane", Atoms: []Symbol{"C", "H", "H", "H", "H"}},
	{Formula: "CO2", Name: "Carbon Dioxide", Atoms: []Symbol{"O", "C", "O"}},
	{Formula: "H2SO4", Name: "Sulfuric Acid", Atoms: []Symbol{"S", "O", "O", "O", "O", "H", "H"}},
	{Formula: "C6H6", Name: "Benzene", Atoms: []Symbol{"C", "C", "C", "C", "C", "C", "H", "H", "H", "H", "H", "H"}},
}

// PlayerMoleculeForLevel returns the cluster for a level. Levels below 1
// use the first entry and levels past the table use the last.
func PlayerMoleculeForLevel(level int) PlayerMolecule {
	i := min(max(level-1, 0), len(playerMolecules)-1)
	m := playerMolecules[i]
	m.Atoms = append([]Symbol(nil), m.Atoms...)
	return m
}
