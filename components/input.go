package components

import (
	cfg "github.com/automoto/lumina/config"
	"github.com/yohamta/donburi"
)

// InputSource reports whether an action is held right now. The game uses
// the keyboard; tests and the terminal frontend script their own.
type InputSource interface {
	Pressed(action cfg.ActionID) bool
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Source   InputSource
}

var Input = donburi.NewComponentType[InputData]()
