package automaton

import "errors"

var (
	// ErrOutOfBounds is returned by explicit cell access outside the grid.
	ErrOutOfBounds = errors.New("automaton: coordinate out of bounds")
	// ErrCellCount is returned when a grid is built from a cell slice whose
	// length is not width*height.
	ErrCellCount = errors.New("automaton: cell count does not match dimensions")
)
