package ports

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a board and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Validator performs fast constraint checks (row/col/box) and reports the
// coordinates of conflicting cells.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Loader reads a puzzle from an external source such as a file.
type Loader interface {
	Load(ctx context.Context, path string) (*domain.Board, error)
}

// Renderer turns a board into its textual representation.
type Renderer interface {
	Render(b *domain.Board) string
}
