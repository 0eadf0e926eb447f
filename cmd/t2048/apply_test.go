package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func TestApplyMovesNoSpawn(t *testing.T) {
	var out bytes.Buffer
	err := applyMoves(applyOptions{
		Board:   "2,2,0,0,0,0,0,0,3,0,0,0,0,1,0,0",
		NoSpawn: true,
		Moves:   []string{"U"},
		Output:  &out,
	})
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(out.String(), "\n")
	if lines[0] != "0,0,0,0,0,0,0,0,2,2,0,0,3,1,0,0" {
		t.Errorf("board line = %q", lines[0])
	}
	if !strings.Contains(out.String(), "moves: 1 (1 changed the board)") {
		t.Errorf("missing move summary in:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "status: playing") {
		t.Errorf("missing status in:\n%s", out.String())
	}
}

func TestApplyMovesSeparators(t *testing.T) {
	var out bytes.Buffer
	err := applyMoves(applyOptions{
		Board:   "1,1,0,0",
		NoSpawn: true,
		Moves:   []string{"l, r", "d"},
		Output:  &out,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "moves: 3") {
		t.Errorf("separators should be skipped:\n%s", out.String())
	}
	if !strings.HasPrefix(out.String(), "0,2,0,0\n") {
		t.Errorf("board line = %q", strings.SplitN(out.String(), "\n", 2)[0])
	}
}

func TestApplyMovesSpawnsWithSeed(t *testing.T) {
	run := func() string {
		var out bytes.Buffer
		err := applyMoves(applyOptions{
			Size:     4,
			Seed:     7,
			FourProb: 0.1,
			Moves:    []string{"ULDRULDR"},
			Output:   &out,
		})
		if err != nil {
			t.Fatal(err)
		}
		return out.String()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different output:\n%s\nvs\n%s", a, b)
	}
}

func TestApplyMovesGameOver(t *testing.T) {
	var out bytes.Buffer
	err := applyMoves(applyOptions{
		Board:  "1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16",
		Seed:   1,
		Moves:  []string{"S"},
		Output: &out,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "status: game over") {
		t.Errorf("expected game over:\n%s", out.String())
	}
}

func TestApplyMovesErrors(t *testing.T) {
	var out bytes.Buffer

	err := applyMoves(applyOptions{Board: "0,0,0,0", Moves: []string{"LX"}, Output: &out})
	if !errors.Is(err, t2048.ErrInvalidDirection) {
		t.Errorf("error = %v, want ErrInvalidDirection", err)
	}

	err = applyMoves(applyOptions{Board: "0,0,0", Output: &out})
	if !errors.Is(err, t2048.ErrBoardNotSquare) {
		t.Errorf("error = %v, want ErrBoardNotSquare", err)
	}

	for _, size := range []int{0, 17, 100000} {
		err = applyMoves(applyOptions{Size: size, Output: &out})
		if !errors.Is(err, t2048.ErrInvalidSideLength) {
			t.Errorf("size %d: error = %v, want ErrInvalidSideLength", size, err)
		}
	}
}
