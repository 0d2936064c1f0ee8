package storage

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a set of records.
type Stats struct {
	TotalGames         int
	BestScore          int
	AverageScore       int
	StdDev             float64
	TotalMolecules     int
	FavoriteDifficulty string
}

// ComputeStats summarizes records. The favorite difficulty is the most
// frequent one, medium when there are no records or on a tie with medium.
func ComputeStats(records []Record) Stats {
	st := Stats{FavoriteDifficulty: "medium"}
	if len(records) == 0 {
		return st
	}

	scores := make([]float64, len(records))
	counts := make(map[string]int)
	for i, r := range records {
		scores[i] = float64(r.Score)
		st.BestScore = max(st.BestScore, r.Score)
		st.TotalMolecules += len(r.FormedMolecules)
		counts[r.Difficulty]++
	}
	st.TotalGames = len(records)

	mean, std := stat.MeanStdDev(scores, nil)
	st.AverageScore = int(math.Round(mean))
	if len(records) > 1 {
		st.StdDev = std
	}

	best := counts[st.FavoriteDifficulty]
	for _, d := range []string{"easy", "medium", "hard"} {
		if counts[d] > best {
			st.FavoriteDifficulty, best = d, counts[d]
		}
	}
	return st
}
