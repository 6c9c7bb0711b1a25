package systems

import (
	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the input source and updates the Input component.
// Must run BEFORE every system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	if input.Source == nil {
		return
	}
	for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
		input.Current[id] = input.Source.Pressed(id)
	}
}

// SetInputSource replaces where UpdateInput reads from.
func SetInputSource(ecs *ecs.ECS, source components.InputSource) {
	getOrCreateInput(ecs).Source = source
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// IsHeld reports whether the action is down this frame.
func IsHeld(input *components.InputData, id cfg.ActionID) bool {
	return input.Current[id]
}

// WasJustPressed is true only on the frame the action goes from up to down.
func WasJustPressed(input *components.InputData, id cfg.ActionID) bool {
	return GetAction(input, id).JustPressed
}
