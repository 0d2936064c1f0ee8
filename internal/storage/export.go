package storage

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
)

// csvRow is the exported shape of a Record.
type csvRow struct {
	Rank              int    `csv:"rank"`
	Score             int    `csv:"score"`
	Level             int    `csv:"level"`
	Difficulty        string `csv:"difficulty"`
	PlayerName        string `csv:"player_name"`
	ElementsCollected int    `csv:"elements_collected"`
	Molecules         string `csv:"molecules"`
	Date              string `csv:"date"`
}

// ExportCSV writes records, with a header, in the order given.
func ExportCSV(w io.Writer, records []Record) error {
	rows := make([]*csvRow, len(records))
	for i, r := range records {
		rows[i] = &csvRow{
			Rank:              i + 1,
			Score:             r.Score,
			Level:             r.Level,
			Difficulty:        r.Difficulty,
			PlayerName:        r.PlayerName,
			ElementsCollected: r.ElementsCollected,
			Molecules:         strings.Join(r.FormedMolecules, " "),
			Date:              r.Date.Format(timeLayout),
		}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("storage: writing csv: %w", err)
	}
	return nil
}
