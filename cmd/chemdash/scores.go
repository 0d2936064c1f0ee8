package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chemdash/internal/config"
	"github.com/vovakirdan/chemdash/internal/storage"
)

var (
	flagScoresCSV   string
	flagScoresClear bool
	flagScoresStats bool
	flagScoresOnly  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

By default all difficulties are listed; pass --difficulty with --only to
filter.

Examples:
  chemdash scores
  chemdash scores --difficulty hard --only
  chemdash scores --stats
  chemdash scores --csv scores.csv
  chemdash scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresCSV, "csv", "", "Export the listed scores to a CSV file")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all high scores")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Print summary statistics")
	scoresCmd.Flags().BoolVar(&flagScoresOnly, "only", false, "Only list the --difficulty tier")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("High scores cleared.")
		return nil
	}

	filter := ""
	if flagScoresOnly {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		filter = string(d)
	}

	records, err := store.ListScores(filter)
	if err != nil {
		return err
	}

	if flagScoresCSV != "" {
		f, err := os.Create(flagScoresCSV)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagScoresCSV, err)
		}
		if err := storage.ExportCSV(f, records); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("Exported %d scores to %s\n", len(records), flagScoresCSV)
		return nil
	}

	title := "High Scores"
	if filter != "" {
		title += " - " + strings.ToUpper(filter)
	}
	fmt.Println(title)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'chemdash play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-12s  %-16s  %s\n", "Rank", "Score", "Level", "Mode", "Player", "Date", "Molecules")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-12s  %-16s  %s\n", "----", "-----", "-----", "----", "------", "----", "---------")
	for i, r := range records {
		fmt.Printf("  %-4d  %-8d  %-5d  %-6s  %-12s  %-16s  %s\n",
			i+1, r.Score, r.Level, r.Difficulty, r.PlayerName,
			r.Date.Local().Format("2006-01-02 15:04"), strings.Join(r.FormedMolecules, " "))
	}

	if flagScoresStats {
		st := storage.ComputeStats(records)
		fmt.Println()
		fmt.Printf("Games:     %d\n", st.TotalGames)
		fmt.Printf("Best:      %d\n", st.BestScore)
		fmt.Printf("Average:   %d (std dev %.1f)\n", st.AverageScore, st.StdDev)
		fmt.Printf("Molecules: %d\n", st.TotalMolecules)
		fmt.Printf("Favorite:  %s\n", st.FavoriteDifficulty)
	}
	return nil
}
