// Package puzzlefile reads sudoku puzzles from text files on disk.
package puzzlefile

import (
	"context"
	"fmt"
	"os"

	"svw.info/sudoku-solver/internal/adapters/text"
	"svw.info/sudoku-solver/internal/domain"
)

type FS struct{}

func NewFS() *FS { return &FS{} }

// Load reads the file at path and parses it as an 81-cell puzzle.
func (l *FS) Load(ctx context.Context, path string) (*domain.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle: %w", err)
	}
	b, err := text.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return b, nil
}
