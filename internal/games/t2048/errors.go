package t2048

import "errors"

var (
	ErrInvalidDirection  = errors.New("t2048: invalid direction")
	ErrOutOfBounds       = errors.New("t2048: position out of bounds")
	ErrBoardNotSquare    = errors.New("t2048: board length is not a square number")
	ErrInvalidPower      = errors.New("t2048: invalid power")
	ErrInvalidCell       = errors.New("t2048: invalid cell value")
	ErrInvalidSideLength = errors.New("t2048: side length must be at least 1")
)
