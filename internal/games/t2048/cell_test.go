package t2048

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewCell(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{name: "empty", value: 0},
		{name: "two", value: 2},
		{name: "large power", value: 1 << 30},
		{name: "one is not a tile", value: 1, wantErr: true},
		{name: "not a power of two", value: 6, wantErr: true},
		{name: "negative", value: -2, wantErr: true},
		{name: "too large", value: 1 << 31, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCell(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCell) {
					t.Errorf("NewCell(%d) error = %v, want ErrInvalidCell", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCell(%d) unexpected error: %v", tt.value, err)
			}
			if c.Value() != tt.value {
				t.Errorf("Value() = %d, want %d", c.Value(), tt.value)
			}
		})
	}
}

func TestCellFromPower(t *testing.T) {
	c, err := CellFromPower(3)
	if err != nil {
		t.Fatal(err)
	}
	if c.Value() != 8 {
		t.Errorf("CellFromPower(3).Value() = %d, want 8", c.Value())
	}

	if c, _ := CellFromPower(0); !c.IsEmpty() {
		t.Error("CellFromPower(0) should be empty")
	}

	for _, p := range []int{-1, 31, 48} {
		if _, err := CellFromPower(p); !errors.Is(err, ErrInvalidPower) {
			t.Errorf("CellFromPower(%d) error = %v, want ErrInvalidPower", p, err)
		}
	}
}

func TestCellMerge(t *testing.T) {
	four, _ := NewCell(4)
	eight, _ := NewCell(8)

	if !four.CanMergeWith(four) {
		t.Error("equal cells should merge")
	}
	if four.CanMergeWith(eight) {
		t.Error("different cells should not merge")
	}
	if got := four.MergedWith(four); got != eight {
		t.Errorf("4 merged with 4 = %d, want 8", got.Value())
	}

	top, _ := CellFromPower(MaxPower)
	if top.CanMergeWith(top) {
		t.Errorf("2^%d tiles should not merge", MaxPower)
	}

	// Literal equality rule: two empties compare mergeable.
	if !EmptyCell().CanMergeWith(EmptyCell()) {
		t.Error("two empty cells compare as mergeable")
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{0, "0"},
		{2, "1"},
		{8, "3"},
		{2048, "11"},
	}

	for _, tt := range tests {
		c, _ := NewCell(tt.value)
		if got := c.String(); got != tt.want {
			t.Errorf("Cell(%d).String() = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestSpawnValueDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const trials = 10000

	fours := 0
	for i := 0; i < trials; i++ {
		switch c := SpawnValue(rng); c.Value() {
		case 2:
		case 4:
			fours++
		default:
			t.Fatalf("SpawnValue produced %d", c.Value())
		}
	}

	// Expect ~10% fours; allow a generous band.
	if fours < trials*5/100 || fours > trials*15/100 {
		t.Errorf("got %d fours in %d trials, want about 10%%", fours, trials)
	}
}
