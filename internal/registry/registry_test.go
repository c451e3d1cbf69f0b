package registry

import (
	"testing"

	"github.com/vovakirdan/orbit-breaker/internal/core"
)

type fakeGame struct {
	id    string
	state core.GameState
}

func (f *fakeGame) ID() string { return f.id }
func (f *fakeGame) Title() string { return "Fake " + f.id }
func (f *fakeGame) Description() string { return "a fake mode" }
func (f *fakeGame) Reset(core.RuntimeConfig) { f.state = core.GameState{} }
func (f *fakeGame) Step(core.InputFrame) core.StepResult {
	f.state.Score++
	return core.StepResult{State: f.state}
}
func (f *fakeGame) Render(*core.Screen) {}
func (f *fakeGame) State() core.GameState { return f.state }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_fake", func() Game { return &fakeGame{id: "zz_fake"} })

	if !Exists("zz_fake") {
		t.Fatal("Exists() = false after Register()")
	}

	g, err := Create("zz_fake")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "zz_fake" {
		t.Errorf("ID() = %q, expected zz_fake", g.ID())
	}

	var found *GameInfo
	for _, info := range List() {
		if info.ID == "zz_fake" {
			found = &info
		}
	}
	if found == nil {
		t.Fatal("List() missing registered game")
	}
	if found.Title != "Fake zz_fake" || found.Description != "a fake mode" {
		t.Errorf("GameInfo = %+v", *found)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() should fail for an unknown ID")
	}
	if Exists("no_such_game") {
		t.Error("Exists() = true for an unknown ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &fakeGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on a duplicate ID")
		}
	}()
	Register("zz_dup", func() Game { return &fakeGame{id: "zz_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() Game { return &fakeGame{id: "zz_b"} })
	Register("zz_a", func() Game { return &fakeGame{id: "zz_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
