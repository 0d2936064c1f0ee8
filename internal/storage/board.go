package storage

import (
	"github.com/charmbracelet/log"
)

// Board is the gameplay-facing view of a Store. Persistence failures are
// logged and reported as "no scores" so a broken database never stops a
// run. A Board with a nil Store records nothing.
type Board struct {
	store  *Store
	logger *log.Logger
}

// NewBoard wraps store. Both arguments may be nil.
func NewBoard(store *Store, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.Default()
	}
	return &Board{store: store, logger: logger}
}

// IsHighScore reports whether score would enter the table.
func (b *Board) IsHighScore(score int) bool {
	if b == nil || b.store == nil {
		return false
	}
	ok, err := b.store.IsHighScore(score)
	if err != nil {
		b.logger.Warn("high score check failed", "err", err)
		return false
	}
	return ok
}

// Add stores r and returns its rank, 0 when it was not kept or on failure.
func (b *Board) Add(r Record) int {
	if b == nil || b.store == nil {
		return 0
	}
	rank, err := b.store.AddScore(r)
	if err != nil {
		b.logger.Error("saving score failed", "score", r.Score, "err", err)
		return 0
	}
	b.logger.Info("score saved", "score", r.Score, "difficulty", r.Difficulty, "rank", rank)
	return rank
}

// List returns the kept records, or nil on failure.
func (b *Board) List(difficulty string) []Record {
	if b == nil || b.store == nil {
		return nil
	}
	records, err := b.store.ListScores(difficulty)
	if err != nil {
		b.logger.Warn("listing scores failed", "err", err)
		return nil
	}
	return records
}

// Clear deletes every record, logging failures.
func (b *Board) Clear() {
	if b == nil || b.store == nil {
		return
	}
	if err := b.store.Clear(); err != nil {
		b.logger.Error("clearing scores failed", "err", err)
	}
}
