// Package t2048 implements the 2048 sliding-tile puzzle: a square board of
// power-of-two tiles that slide, merge and refill on every move.
package t2048

import (
	"fmt"
	"strings"
)

// BoardSize is the default board dimension.
const BoardSize = 4

// Board is an N×N grid of cells together with the set of empty positions.
// A Board is not safe for concurrent use.
type Board struct {
	side    int
	cells   [][]Cell
	empty   positionSet
	spawner *Spawner
}

// NewBoard creates a board of the given side length with a single spawned tile.
// A nil spawner draws from a time-seeded source.
func NewBoard(sideLength int, spawner *Spawner) (*Board, error) {
	b, err := newEmptyBoard(sideLength, spawner)
	if err != nil {
		return nil, err
	}
	b.FillRandomEmptyCell()
	return b, nil
}

// newEmptyBoard creates a board with every cell empty.
func newEmptyBoard(sideLength int, spawner *Spawner) (*Board, error) {
	if sideLength < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSideLength, sideLength)
	}
	if spawner == nil {
		spawner = defaultSpawner()
	}

	b := &Board{
		side:    sideLength,
		cells:   make([][]Cell, sideLength),
		empty:   newPositionSet(sideLength * sideLength),
		spawner: spawner,
	}
	for row := 0; row < sideLength; row++ {
		b.cells[row] = make([]Cell, sideLength)
		for column := 0; column < sideLength; column++ {
			b.empty.add(Pos(row, column))
		}
	}
	return b, nil
}

// SideLength returns the board dimension.
func (b *Board) SideLength() int {
	return b.side
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	return b.empty.len()
}

// EmptyPositions returns the empty positions in row-major order.
func (b *Board) EmptyPositions() []Position {
	var out []Position
	b.ForEachCell(func(p Position) {
		if b.empty.contains(p) {
			out = append(out, p)
		}
	})
	return out
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.side && p.Column >= 0 && p.Column < b.side
}

// Cell returns the cell at p.
func (b *Board) Cell(p Position) (Cell, error) {
	if !b.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, p, b.side, b.side)
	}
	return b.cells[p.Row][p.Column], nil
}

// SetCell replaces the cell at p.
func (b *Board) SetCell(c Cell, p Position) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, p, b.side, b.side)
	}
	b.set(c, p)
	return nil
}

// set writes an in-bounds cell and keeps the empty set in step.
// Every grid write goes through here.
func (b *Board) set(c Cell, p Position) {
	if c.IsEmpty() {
		b.empty.add(p)
	} else {
		b.empty.remove(p)
	}
	b.cells[p.Row][p.Column] = c
}

// at returns the cell at an in-bounds position.
func (b *Board) at(p Position) Cell {
	return b.cells[p.Row][p.Column]
}

// FillRandomEmptyCell places a spawned tile on a uniformly chosen empty cell.
// It returns false and leaves the board untouched when no cell is empty;
// callers are expected to check EmptyCount first.
func (b *Board) FillRandomEmptyCell() (Position, bool) {
	if b.empty.len() == 0 {
		return Position{}, false
	}
	p := b.empty.at(b.spawner.Intn(b.empty.len()))
	b.set(b.spawner.Cell(), p)
	return p, true
}

// ForEachCell calls fn for every position in row-major order.
func (b *Board) ForEachCell(fn func(Position)) {
	for row := 0; row < b.side; row++ {
		for column := 0; column < b.side; column++ {
			fn(Pos(row, column))
		}
	}
}

// Positions returns every position in row-major order.
func (b *Board) Positions() []Position {
	out := make([]Position, 0, b.side*b.side)
	b.ForEachCell(func(p Position) {
		out = append(out, p)
	})
	return out
}

// MaxTile returns the highest tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	b.ForEachCell(func(p Position) {
		if v := b.at(p).Value(); v > maxVal {
			maxVal = v
		}
	})
	return maxVal
}

// Equal reports whether both boards have the same side length and cells.
func (b *Board) Equal(other *Board) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil || b.side != other.side {
		return false
	}
	for row := 0; row < b.side; row++ {
		for column := 0; column < b.side; column++ {
			if b.cells[row][column] != other.cells[row][column] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy sharing the spawner.
func (b *Board) Clone() *Board {
	c := &Board{
		side:    b.side,
		cells:   make([][]Cell, b.side),
		empty:   b.empty.clone(),
		spawner: b.spawner,
	}
	for row := 0; row < b.side; row++ {
		c.cells[row] = append([]Cell(nil), b.cells[row]...)
	}
	return c
}

// Grid renders the board as rows of powers in encoding order, row 0 first.
func (b *Board) Grid() string {
	var sb strings.Builder
	for row := 0; row < b.side; row++ {
		for column := 0; column < b.side; column++ {
			s := b.cells[row][column].String()
			sb.WriteString(s)
			if pad := 4 - len(s); pad > 0 && column < b.side-1 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// positionSet is an indexed set of positions supporting O(1) add, remove and
// uniform selection by index.
type positionSet struct {
	items []Position
	index map[Position]int
}

func newPositionSet(capacity int) positionSet {
	return positionSet{
		items: make([]Position, 0, capacity),
		index: make(map[Position]int, capacity),
	}
}

func (s *positionSet) len() int {
	return len(s.items)
}

func (s *positionSet) contains(p Position) bool {
	_, ok := s.index[p]
	return ok
}

func (s *positionSet) at(i int) Position {
	return s.items[i]
}

func (s *positionSet) add(p Position) {
	if _, ok := s.index[p]; ok {
		return
	}
	s.index[p] = len(s.items)
	s.items = append(s.items, p)
}

// remove swaps the last item into the removed slot.
func (s *positionSet) remove(p Position) {
	i, ok := s.index[p]
	if !ok {
		return
	}
	last := len(s.items) - 1
	if i != last {
		moved := s.items[last]
		s.items[i] = moved
		s.index[moved] = i
	}
	s.items = s.items[:last]
	delete(s.index, p)
}

func (s *positionSet) clone() positionSet {
	c := positionSet{
		items: append([]Position(nil), s.items...),
		index: make(map[Position]int, len(s.index)),
	}
	for p, i := range s.index {
		c.index[p] = i
	}
	return c
}
