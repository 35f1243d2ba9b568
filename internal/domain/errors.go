package domain

import "errors"

var (
	// ErrOutOfBounds marks a coordinate or digit outside the 9x9 range.
	// It signals a bug in the caller, not a runtime condition worth retrying.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInvalidGivens marks an input whose pre-filled cells already
	// duplicate a digit within a row, column, or box.
	ErrInvalidGivens = errors.New("invalid givens")

	// ErrUnsolvable marks a puzzle whose search tree holds no valid
	// completion. An expected outcome for some puzzles, not a failure of
	// the solver.
	ErrUnsolvable = errors.New("unsolvable")
)
