package text

import (
	"strings"

	"svw.info/sudoku-solver/internal/domain"
)

// Format selects the textual representation of a board.
type Format int

const (
	// Plain renders nine rows of nine digits, 0 for empty. Re-parseable.
	Plain Format = iota
	// Pretty renders a bordered board with empty cells left blank.
	Pretty
)

// Renderer renders boards in a fixed format.
type Renderer struct{ Format Format }

func NewRenderer(f Format) *Renderer { return &Renderer{Format: f} }

func (rd *Renderer) Render(b *domain.Board) string {
	if rd.Format == Pretty {
		return renderPretty(b)
	}
	return renderPlain(b)
}

func renderPlain(b *domain.Board) string {
	var sb strings.Builder
	sb.Grow(90)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			sb.WriteByte('0' + b.Values[r][c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

const (
	heavyRule = "====================================="
	lightRule = "|-----------|-----------|-----------|"
)

// renderPretty draws the board with heavy rules around each band of three
// rows and light rules between the rows inside a band.
func renderPretty(b *domain.Board) string {
	var sb strings.Builder
	sb.WriteString(heavyRule)
	sb.WriteByte('\n')
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := byte(' ')
			if v := b.Values[r][c]; v != 0 {
				cell = '0' + v
			}
			sb.WriteString("| ")
			sb.WriteByte(cell)
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
		if r%3 == 2 {
			sb.WriteString(heavyRule)
		} else {
			sb.WriteString(lightRule)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
