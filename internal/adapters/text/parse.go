// Package text converts boards to and from their textual forms: the 81-digit
// puzzle format consumed by the loader and the plain/pretty renderings
// written to the console.
package text

import (
	"fmt"

	"svw.info/sudoku-solver/internal/domain"
)

// Parse builds a board from textual input. Every rune that is not an ASCII
// digit is skipped, so a bare 81-character string, one row per line, and the
// bordered pretty output all parse the same way. 0 marks an empty cell.
// Anything other than exactly 81 digits is a malformed puzzle.
func Parse(input string) (*domain.Board, error) {
	digits := make([]uint8, 0, 81)
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits = append(digits, uint8(r-'0'))
		}
	}
	if len(digits) != 81 {
		return nil, fmt.Errorf("expected 81 cell digits, found %d", len(digits))
	}
	var b domain.Board
	for i, v := range digits {
		b.Values[i/9][i%9] = v
	}
	return &b, nil
}
