package t2048

import (
	"fmt"
	"math/bits"
	"math/rand"
	"strconv"
)

// MaxPower is the largest exponent a tile may carry (2^30).
const MaxPower = 30

// DefaultSpawnFourProbability is the chance that a spawned tile is a 4.
const DefaultSpawnFourProbability = 0.10

// Cell is the value of a single grid slot: zero when empty, otherwise a power of two.
// Cells are immutable; merging produces a new Cell.
type Cell struct {
	value int
}

// EmptyCell returns a cell with no tile.
func EmptyCell() Cell {
	return Cell{}
}

// NewCell returns a cell holding value.
// Value must be zero or a power of two no larger than 2^MaxPower.
func NewCell(value int) (Cell, error) {
	if value == 0 {
		return Cell{}, nil
	}
	if value < 2 || value&(value-1) != 0 || value > 1<<MaxPower {
		return Cell{}, fmt.Errorf("%w: %d", ErrInvalidCell, value)
	}
	return Cell{value: value}, nil
}

// CellFromPower returns the cell with value 2^power. Power 0 yields an empty cell.
func CellFromPower(power int) (Cell, error) {
	if power < 0 || power > MaxPower {
		return Cell{}, fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidPower, power, MaxPower)
	}
	if power == 0 {
		return Cell{}, nil
	}
	return Cell{value: 1 << power}, nil
}

// SpawnValue returns a new tile: 2 with probability 0.9, 4 otherwise.
func SpawnValue(rng *rand.Rand) Cell {
	return spawnCell(rng, DefaultSpawnFourProbability)
}

func spawnCell(rng *rand.Rand, fourProb float64) Cell {
	if rng.Float64() < fourProb {
		return Cell{value: 4}
	}
	return Cell{value: 2}
}

// Value returns the tile value, 0 for an empty cell.
func (c Cell) Value() int {
	return c.value
}

// Power returns log2 of the value, 0 for an empty cell.
func (c Cell) Power() int {
	if c.value == 0 {
		return 0
	}
	return bits.TrailingZeros(uint(c.value))
}

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return c.value == 0
}

// CanMergeWith reports whether the two cells hold equal values below 2^MaxPower.
// Two empty cells compare as mergeable; callers scanning a grid must skip empties.
// Tiles of 2^MaxPower never merge.
func (c Cell) CanMergeWith(other Cell) bool {
	return c.value == other.value && c.Power() < MaxPower
}

// MergedWith returns the cell produced by merging c with other.
// Only meaningful when CanMergeWith is true.
func (c Cell) MergedWith(other Cell) Cell {
	return Cell{value: c.value * 2}
}

// String renders the cell as the base-2 logarithm of its value ("3" for 8).
func (c Cell) String() string {
	return strconv.Itoa(c.Power())
}
