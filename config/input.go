package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionLightPulse
	ActionSlash
	ActionPause
	ActionReset
	ActionToggleMinimap
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:          "none",
	ActionMoveLeft:      "move_left",
	ActionMoveRight:     "move_right",
	ActionJump:          "jump",
	ActionLightPulse:    "light_pulse",
	ActionSlash:         "slash",
	ActionPause:         "pause",
	ActionReset:         "reset",
	ActionToggleMinimap: "toggle_minimap",
	ActionToggleDebug:   "toggle_debug",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName resolves a binding name from the override file.
func ActionByName(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name {
			return ActionID(id), true
		}
	}
	return ActionNone, false
}

// InputBinding represents the keys bound to an action. Keys are named the
// way ebiten's Key.String spells them ("A", "ArrowLeft", "Space"); the
// windowed frontend resolves them.
type InputBinding struct {
	Keys []string
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	ResetInput()
}

// ResetInput restores the default key bindings.
func ResetInput() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []string{"A", "ArrowLeft"},
			},
			ActionMoveRight: {
				Keys: []string{"D", "ArrowRight"},
			},
			ActionJump: {
				Keys: []string{"Space"},
			},
			ActionLightPulse: {
				Keys: []string{"Q"},
			},
			ActionSlash: {
				Keys: []string{"E"},
			},
			ActionPause: {
				Keys: []string{"P", "Escape"},
			},
			ActionReset: {
				Keys: []string{"R"},
			},
			ActionToggleMinimap: {
				Keys: []string{"M"},
			},
			ActionToggleDebug: {
				Keys: []string{"F1"},
			},
		},
	}
}
