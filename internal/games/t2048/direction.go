package t2048

import (
	"fmt"
	"unicode"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every move direction.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// directionDeltas holds the (row, column) step tiles travel in each direction.
// Row indices grow toward the top of the rendered board.
var directionDeltas = [...][2]int{
	DirUp:    {1, 0},
	DirDown:  {-1, 0},
	DirLeft:  {0, -1},
	DirRight: {0, 1},
}

// ParseDirection maps a command character to a direction.
// N/U are up, S/D down, W/L left and E/R right, in either case.
func ParseDirection(r rune) (Direction, error) {
	switch unicode.ToUpper(r) {
	case 'N', 'U':
		return DirUp, nil
	case 'S', 'D':
		return DirDown, nil
	case 'W', 'L':
		return DirLeft, nil
	case 'E', 'R':
		return DirRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, r)
	}
}

// RowDelta returns the row step of the direction.
func (d Direction) RowDelta() int {
	return directionDeltas[d][0]
}

// ColumnDelta returns the column step of the direction.
func (d Direction) ColumnDelta() int {
	return directionDeltas[d][1]
}

// IsVertical reports whether the direction moves tiles along a column.
func (d Direction) IsVertical() bool {
	return d == DirUp || d == DirDown
}

// IsHorizontal reports whether the direction moves tiles along a row.
func (d Direction) IsHorizontal() bool {
	return d == DirLeft || d == DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirLeft:
		return "LEFT"
	case DirRight:
		return "RIGHT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Position identifies one grid slot.
type Position struct {
	Row    int
	Column int
}

// Pos is shorthand for Position{Row: row, Column: column}.
func Pos(row, column int) Position {
	return Position{Row: row, Column: column}
}

// Neighbor returns the adjacent position one step in direction d.
// The result may lie outside the board.
func (p Position) Neighbor(d Direction) Position {
	return Position{Row: p.Row + d.RowDelta(), Column: p.Column + d.ColumnDelta()}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}
