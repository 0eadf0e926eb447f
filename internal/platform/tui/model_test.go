package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func newTestModel(t *testing.T) (Model, *t2048.Game) {
	t.Helper()
	game := t2048.New(4)
	cfg := core.DefaultConfig()
	cfg.Seed = 2048
	cfg.ScreenW = 120

	m := NewModel(game, cfg, nil)
	if m.Init() == nil {
		t.Fatal("Init should start the tick loop")
	}
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelMovesOnTick(t *testing.T) {
	m, game := newTestModel(t)

	// With a single tile, at least one of left or right moves it.
	for _, r := range "ad" {
		m, _ = update(t, m, runeKey(r))
		m, _ = update(t, m, TickMsg{})
	}

	if m.gameState.Moves == 0 {
		t.Error("expected at least one move")
	}
	if game.State().Moves != m.gameState.Moves {
		t.Errorf("model state %d out of step with game %d", m.gameState.Moves, game.State().Moves)
	}
	if len(m.inputFrame.Actions) != 0 {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelRestart(t *testing.T) {
	m, game := newTestModel(t)

	for _, r := range "adws" {
		m, _ = update(t, m, runeKey(r))
		m, _ = update(t, m, TickMsg{})
	}

	m, _ = update(t, m, runeKey('r'))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("restart should keep ticking")
	}
	if m.restarts != 1 {
		t.Errorf("restarts = %d, want 1", m.restarts)
	}
	if game.State().Moves != 0 || m.gameState.Moves != 0 {
		t.Error("restart should clear the move count")
	}
	if game.Board().EmptyCount() != 15 {
		t.Errorf("restarted board has %d empty cells, want 15", game.Board().EmptyCount())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m, game := newTestModel(t)
	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, TickMsg{})
	before := game.Board().Encode()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 30-helpHeight)
	}
	if game.Board().Encode() != before {
		t.Error("resize should not reset the board")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "2048") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the key help")
	}
	if m.SessionID() == "" {
		t.Error("session ID should be set")
	}
}

func TestMenuSelectsSize(t *testing.T) {
	cfg := core.DefaultConfig()
	menu := NewMenuModel(cfg, 5)

	if got := menu.items[menu.cursor].BoardSize; got != 5 {
		t.Fatalf("cursor starts on size %d, want 5", got)
	}

	next, _ := menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting should quit the menu program")
	}

	selected := next.(MenuModel).Selected()
	if selected == nil || selected.BoardSize != 6 {
		t.Errorf("Selected() = %+v, want the 6x6 variant", selected)
	}
}

func TestMenuQuit(t *testing.T) {
	menu := NewMenuModel(core.DefaultConfig(), 4)

	next, _ := menu.Update(runeKey('q'))
	m := next.(MenuModel)
	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("q should quit without a selection")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
