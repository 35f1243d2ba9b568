package validator

import (
	"context"

	"svw.info/sudoku-solver/internal/domain"
)

// FastValidator finds duplicated digits among filled cells with one bitmask
// pass per row, column, and box. Empty cells never conflict.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether the filled cells satisfy the uniqueness
// constraint, listing the coordinates of every repeated occurrence.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	scan := func(cell func(i, j int) (int, int)) {
		for i := 0; i < 9; i++ {
			m := 0
			for j := 0; j < 9; j++ {
				r, c := cell(i, j)
				val := b.Values[r][c]
				if val == 0 {
					continue
				}
				bit := 1 << val
				if m&bit != 0 {
					conf = append(conf, domain.CellCoord{Row: r, Col: c})
				}
				m |= bit
			}
		}
	}
	scan(func(i, j int) (int, int) { return i, j })                         // rows
	scan(func(i, j int) (int, int) { return j, i })                         // cols
	scan(func(i, j int) (int, int) { return (i/3)*3 + j/3, (i%3)*3 + j%3 }) // boxes
	return len(conf) == 0, conf, nil
}
