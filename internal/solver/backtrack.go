package solver

import (
	"fmt"

	"svw.info/sudoku-solver/internal/domain"
)

// BacktrackingSolver is a straightforward recursive solver. Candidates are
// tried in ascending order and empty cells row-major, so a puzzle with more
// than one completion still resolves to the same solution on every run.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// checkGivens rejects boards whose pre-filled cells already clash. The
// search in Solve/Unique only ever verifies the cells it places itself, so
// without this an already-full invalid board would pass as solved.
func checkGivens(b *domain.Board) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			if v == 0 {
				continue
			}
			if !b.CanPlace(r, c, v) {
				return fmt.Errorf("digit %d at row %d col %d: %w", v, r, c, domain.ErrInvalidGivens)
			}
		}
	}
	return nil
}

// The implementations for Solve and Unique are in backtrack_solve.go and
// backtrack_unique.go, and use the helpers above.
