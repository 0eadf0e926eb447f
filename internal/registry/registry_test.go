package registry

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "stub_7", Title: "Stub 7", BoardSize: 7}, func() Game {
		return &stubGame{id: "stub_7"}
	})

	if !Exists("stub_7") {
		t.Fatal("stub_7 should exist after Register")
	}

	g, err := Create("stub_7")
	if err != nil {
		t.Fatalf("Create(stub_7) error = %v", err)
	}
	if g.ID() != "stub_7" {
		t.Errorf("ID() = %q, want stub_7", g.ID())
	}

	info, ok := BySize(7)
	if !ok || info.ID != "stub_7" {
		t.Errorf("BySize(7) = %+v, %v; want stub_7", info, ok)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create of unknown ID should fail")
	}
	if _, ok := BySize(99); ok {
		t.Error("BySize(99) should find nothing")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "stub_dup", BoardSize: 8}, func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "stub_dup", BoardSize: 8}, func() Game { return &stubGame{id: "stub_dup"} })
}

func TestListSorted(t *testing.T) {
	Register(GameInfo{ID: "stub_b", BoardSize: 10}, func() Game { return &stubGame{id: "stub_b"} })
	Register(GameInfo{ID: "stub_a", BoardSize: 11}, func() Game { return &stubGame{id: "stub_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].BoardSize > list[i].BoardSize {
			t.Errorf("List() not sorted by size: %+v before %+v", list[i-1], list[i])
		}
	}
}
