package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// Solve fills every empty cell of b by depth-first search, trying digits
// 1..9 per cell and undoing each tentative placement that leads nowhere.
// The input board is never modified; the search runs on a copy, so on
// failure the caller still holds the original puzzle. Duplicate givens are
// rejected up front as ErrInvalidGivens, a fully explored tree with no
// completion yields ErrUnsolvable, and an already-complete valid board comes
// back with zero nodes searched.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := checkGivens(b); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	grid := domain.Board{Values: b.Values}
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := grid.NextEmpty()
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if grid.CanPlace(r, c, v) {
				grid.Values[r][c] = v
				if dfs() {
					return true
				}
				grid.Values[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, domain.ErrUnsolvable
	}
	return &grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
