package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudoku-solver/internal/domain"
)

func TestUnique(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if ok, _, err := s.Unique(ctx, &domain.Board{Values: sample}); err != nil || !ok {
		t.Fatalf("classic puzzle should be unique: ok=%v err=%v", ok, err)
	}
	if ok, _, err := s.Unique(ctx, &domain.Board{Values: sampleSolved}); err != nil || !ok {
		t.Fatalf("a complete board has exactly its own solution: ok=%v err=%v", ok, err)
	}
	if ok, _, err := s.Unique(ctx, &domain.Board{}); err != nil || ok {
		t.Fatalf("empty board reported unique: ok=%v err=%v", ok, err)
	}
}

func TestUniqueRejectsDuplicateGivens(t *testing.T) {
	var grid [9][9]uint8
	grid[4][0], grid[4][8] = 7, 7
	_, _, err := NewBacktrackingSolver().Unique(context.Background(), &domain.Board{Values: grid})
	if !errors.Is(err, domain.ErrInvalidGivens) {
		t.Fatalf("err = %v, want ErrInvalidGivens", err)
	}
}
