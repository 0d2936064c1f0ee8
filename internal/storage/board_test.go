package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestBoardNilStore(t *testing.T) {
	b := NewBoard(nil, nil)
	if b.IsHighScore(1000) {
		t.Error("nil store reported a high score")
	}
	if rank := b.Add(Record{Score: 1000}); rank != 0 {
		t.Errorf("rank = %d, expected 0", rank)
	}
	if b.List("") != nil {
		t.Error("nil store listed records")
	}
	b.Clear()
}

func TestBoardSwallowsErrors(t *testing.T) {
	store := openTestStore(t)
	var buf bytes.Buffer
	b := NewBoard(store, log.New(&buf))

	store.Close()

	if b.IsHighScore(10) {
		t.Error("closed store reported a high score")
	}
	if rank := b.Add(Record{Score: 10, Difficulty: "easy"}); rank != 0 {
		t.Errorf("rank = %d, expected 0", rank)
	}
	if b.List("") != nil {
		t.Error("closed store listed records")
	}
	if !strings.Contains(buf.String(), "saving score failed") {
		t.Errorf("failure not logged: %q", buf.String())
	}
}

func TestBoardAdd(t *testing.T) {
	b := NewBoard(openTestStore(t), log.New(&bytes.Buffer{}))

	if !b.IsHighScore(0) {
		t.Error("empty board should accept any score")
	}
	if rank := b.Add(Record{Score: 400, Difficulty: "medium"}); rank != 1 {
		t.Errorf("rank = %d, expected 1", rank)
	}
	if got := b.List("medium"); len(got) != 1 {
		t.Errorf("List = %+v", got)
	}
	b.Clear()
	if got := b.List(""); len(got) != 0 {
		t.Errorf("List after Clear = %+v", got)
	}
}
