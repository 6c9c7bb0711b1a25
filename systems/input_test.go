package systems

import (
	"testing"

	cfg "github.com/automoto/lumina/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type heldKeys map[cfg.ActionID]bool

func (h heldKeys) Pressed(action cfg.ActionID) bool { return h[action] }

func TestWasJustPressed(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	keys := heldKeys{}
	SetInputSource(e, keys)
	input := getOrCreateInput(e)

	// held for frames 1-3, released on 4, pressed again on 5
	schedule := []bool{false, true, true, true, false, true}
	want := []bool{false, true, false, false, false, true}
	for frame, down := range schedule {
		keys[cfg.ActionJump] = down
		UpdateInput(e)
		if got := WasJustPressed(input, cfg.ActionJump); got != want[frame] {
			t.Errorf("frame %d: WasJustPressed = %v, want %v", frame, got, want[frame])
		}
		if got := IsHeld(input, cfg.ActionJump); got != down {
			t.Errorf("frame %d: IsHeld = %v, want %v", frame, got, down)
		}
	}

	if state := GetAction(input, cfg.ActionJump); state.JustReleased {
		t.Error("JustReleased on a press frame")
	}
	keys[cfg.ActionJump] = false
	UpdateInput(e)
	if state := GetAction(input, cfg.ActionJump); !state.JustReleased || state.Pressed {
		t.Errorf("after release: %+v", state)
	}
}

func TestNoSourceMeansNoInput(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	UpdateInput(e)
	input := getOrCreateInput(e)
	for id := cfg.ActionNone; id < cfg.ActionCount; id++ {
		if IsHeld(input, id) {
			t.Errorf("action %v held without a source", id)
		}
	}
}
