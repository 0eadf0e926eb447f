package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Size    int
	Moves   int
	Board   string // Encoded board, see ParseBoard
	Empty   int
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:  g.tick,
		Size:  g.size,
		Moves: g.moves,
		State: state,
	}
	if g.board != nil {
		snap.Board = g.board.Encode()
		snap.Empty = g.board.EmptyCount()
		snap.MaxTile = g.board.MaxTile()
	}
	return snap
}
