package domain

// Board holds the 81 cells of a 9x9 sudoku. Zero means the cell is empty;
// filled cells hold 1..9.
type Board struct {
	Values [9][9]uint8
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int
	Col int
}

// At returns the value at (r, c), or ErrOutOfBounds for coordinates outside
// the board.
func (b *Board) At(r, c int) (uint8, error) {
	if r < 0 || r > 8 || c < 0 || c > 8 {
		return 0, ErrOutOfBounds
	}
	return b.Values[r][c], nil
}

// Set assigns v at (r, c), with 0 clearing the cell. It never checks sudoku
// constraints; the board is a dumb container and placement legality is the
// solver's concern. ErrOutOfBounds covers both bad coordinates and v > 9.
func (b *Board) Set(r, c int, v uint8) error {
	if r < 0 || r > 8 || c < 0 || c > 8 || v > 9 {
		return ErrOutOfBounds
	}
	b.Values[r][c] = v
	return nil
}

// CanPlace reports whether v at (r, c) would leave the row, column, and 3x3
// box free of duplicates. The addressed cell itself is ignored, so the check
// works the same whether the cell is currently empty or holds v already.
func (b *Board) CanPlace(r, c int, v uint8) bool {
	if r < 0 || r > 8 || c < 0 || c > 8 || v < 1 || v > 9 {
		return false
	}
	for i := 0; i < 9; i++ {
		if i != c && b.Values[r][i] == v {
			return false
		}
		if i != r && b.Values[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if br+dr == r && bc+dc == c {
				continue
			}
			if b.Values[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// NextEmpty returns the first empty cell in row-major order. The fixed scan
// order keeps search results reproducible across runs.
func (b *Board) NextEmpty() (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Complete reports whether every cell holds a digit.
func (b *Board) Complete() bool {
	_, _, ok := b.NextEmpty()
	return !ok
}
