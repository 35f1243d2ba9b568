package validator

import (
	"context"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
)

func coordsContain(cs []domain.CellCoord, r, c int) bool {
	for _, cc := range cs {
		if cc.Row == r && cc.Col == c {
			return true
		}
	}
	return false
}

func TestValidateCleanBoard(t *testing.T) {
	b := &domain.Board{}
	b.Values[0] = [9]uint8{5, 3, 0, 0, 7, 0, 0, 0, 0}
	b.Values[1] = [9]uint8{6, 0, 0, 1, 9, 5, 0, 0, 0}
	ok, conf, err := New().Validate(context.Background(), b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok || len(conf) != 0 {
		t.Fatalf("clean board flagged: ok=%v conflicts=%v", ok, conf)
	}
}

func TestValidateConflicts(t *testing.T) {
	cases := []struct {
		name         string
		edit         func(b *domain.Board)
		wantR, wantC int
	}{
		{
			// second occurrence in the row is the one reported
			"row duplicate", func(b *domain.Board) { b.Values[0][1], b.Values[0][5] = 7, 7 }, 0, 5,
		},
		{
			"col duplicate", func(b *domain.Board) { b.Values[1][2], b.Values[7][2] = 3, 3 }, 7, 2,
		},
		{
			// same box, different row and column
			"box duplicate", func(b *domain.Board) { b.Values[0][0], b.Values[1][1] = 4, 4 }, 1, 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &domain.Board{}
			tc.edit(b)
			ok, conf, err := New().Validate(context.Background(), b)
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if ok {
				t.Fatal("duplicate not detected")
			}
			if !coordsContain(conf, tc.wantR, tc.wantC) {
				t.Fatalf("conflicts %v do not include (%d, %d)", conf, tc.wantR, tc.wantC)
			}
		})
	}
}

func TestValidateEmptyCellsNeverConflict(t *testing.T) {
	ok, conf, err := New().Validate(context.Background(), &domain.Board{})
	if err != nil || !ok || len(conf) != 0 {
		t.Fatalf("empty board flagged: ok=%v conflicts=%v err=%v", ok, conf, err)
	}
}
