package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chemdash/internal/chem"
)

var flagMinPoints int

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the molecules that can be formed",
	Long: `List the molecule catalog in the order the resolver tries it:
highest points first, ties by formula.

Examples:
  chemdash catalog
  chemdash catalog --min-points 300
  chemdash catalog --catalog ./molecules.yaml`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().IntVar(&flagMinPoints, "min-points", 0, "Only list molecules worth at least this many points")
}

func runCatalog(_ *cobra.Command, _ []string) error {
	catalog := chem.DefaultCatalog()
	if flagCatalog != "" {
		c, err := chem.LoadCatalog(flagCatalog)
		if err != nil {
			return err
		}
		catalog = c
	}

	fmt.Printf("  %-8s  %-10s  %-28s  %s\n", "Points", "Formula", "Name", "Elements")
	fmt.Printf("  %-8s  %-10s  %-28s  %s\n", "------", "-------", "----", "--------")
	n := 0
	for _, m := range catalog.Molecules() {
		if m.Points < flagMinPoints {
			continue
		}
		fmt.Printf("  %-8d  %-10s  %-28s  %s\n", m.Points, m.Formula, m.Name, chem.FormatInventory(m.Elements))
		n++
	}

	fmt.Println()
	fmt.Printf("%d of %d molecules%s\n", n, catalog.Len(), minPointsNote())
	return nil
}

func minPointsNote() string {
	if flagMinPoints <= 0 {
		return ""
	}
	return fmt.Sprintf(" worth at least %d points", flagMinPoints)
}
