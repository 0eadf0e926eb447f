package t2048

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Sizes lists the board sizes registered as playable variants.
var Sizes = []int{3, 4, 5, 6}

// Game adapts a Board to the platform's tick-driven game loop.
type Game struct {
	size  int
	board *Board
	tick  uint64
	moves int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a game on a board of the given side length.
func New(size int) *Game {
	return &Game{size: size}
}

// GameID returns the registry ID of the variant with the given board size.
func GameID(size int) string {
	if size == BoardSize {
		return "2048"
	}
	return fmt.Sprintf("2048_%dx%d", size, size)
}

func init() {
	for _, size := range Sizes {
		size := size
		g := New(size)
		registry.Register(registry.GameInfo{
			ID:        g.ID(),
			Title:     g.Title(),
			BoardSize: size,
		}, func() registry.Game {
			return New(size)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.size)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.size == BoardSize {
		return "2048"
	}
	return fmt.Sprintf("2048 (%dx%d)", g.size, g.size)
}

// Size returns the board side length.
func (g *Game) Size() int {
	return g.size
}

// Board returns the live board. Callers must not mutate it.
func (g *Game) Board() *Board {
	return g.board
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	spawner := NewSpawner(rng, cfg.SpawnFourProbability)

	board, err := NewBoard(g.size, spawner)
	if err != nil {
		// Registered sizes are all valid; fall back to the classic board.
		g.size = BoardSize
		board, _ = NewBoard(g.size, spawner)
	}

	g.board = board
	g.tick = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false

	g.checkScreenSize()
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	minW := g.size*cellWidth + 1 + 4
	minH := g.size*cellHeight + 1 + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	dir, ok := actionDirection(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved := g.processMove(dir)
	return core.StepResult{State: g.State(), Moved: moved}
}

// actionDirection picks the move requested this frame, if any.
func actionDirection(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// processMove applies one move and reports whether the board changed.
func (g *Game) processMove(dir Direction) bool {
	moved, alive := g.board.Play(dir)
	if moved {
		g.moves++
	}
	g.gameOver = !alive
	return moved
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:    g.moves,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
