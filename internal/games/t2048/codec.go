package t2048

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseBoard builds a board from comma-separated tile powers in row-major
// order, e.g. "1,0,0,3" for a 2x2 board holding a 2 and an 8.
// Each power must be a whole number 0-30 (0 means empty) and the number of
// entries must be a square. A trailing comma is ignored.
// The spawner is used by later updates; nil draws from a time-seeded source.
func ParseBoard(s string, spawner *Spawner) (*Board, error) {
	tokens := strings.Split(strings.TrimSpace(s), ",")
	if n := len(tokens); n > 1 && strings.TrimSpace(tokens[n-1]) == "" {
		tokens = tokens[:n-1]
	}

	side := int(math.Sqrt(float64(len(tokens))))
	if strings.TrimSpace(s) == "" || side*side != len(tokens) {
		return nil, fmt.Errorf("%w: got %d entries", ErrBoardNotSquare, len(tokens))
	}

	b, err := newEmptyBoard(side, spawner)
	if err != nil {
		return nil, err
	}

	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		power, convErr := strconv.Atoi(tok)
		if convErr != nil {
			return nil, fmt.Errorf("%w: %q at index %d (must be a whole number 0-%d)", ErrInvalidPower, tok, i, MaxPower)
		}
		cell, cellErr := CellFromPower(power)
		if cellErr != nil {
			return nil, fmt.Errorf("entry %d: %w", i, cellErr)
		}
		b.set(cell, Pos(i/side, i%side))
	}
	return b, nil
}

// MustParseBoard is like ParseBoard but panics on error.
// Intended for fixtures and tests.
func MustParseBoard(s string) *Board {
	b, err := ParseBoard(s, nil)
	if err != nil {
		panic(err)
	}
	return b
}

// Encode returns the board in the ParseBoard format.
func (b *Board) Encode() string {
	parts := make([]string, 0, b.side*b.side)
	b.ForEachCell(func(p Position) {
		parts = append(parts, b.at(p).String())
	})
	return strings.Join(parts, ",")
}

// String returns the encoded board.
func (b *Board) String() string {
	return b.Encode()
}
