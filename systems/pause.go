package systems

import (
	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/systems/factory"
	"github.com/automoto/lumina/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on Esc or P.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
}

// SetPaused is used by the pause menu.
func SetPaused(ecs *ecs.ECS, paused bool) {
	GetOrCreatePause(ecs).IsPaused = paused
}

// RequestQuit asks the host loop to stop after this frame.
func RequestQuit(ecs *ecs.ECS) {
	GetOrCreatePause(ecs).Quit = true
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution while the world is
// still loading or the game is paused.
func WithGameplayChecks(system ecs.System) ecs.System {
	paused := WithPauseCheck(system)
	return func(e *ecs.ECS) {
		if !IsWorldReady(e) {
			return
		}
		paused(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

// UpdateReset restarts the run when R is pressed.
func UpdateReset(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionReset).JustPressed {
		ResetSession(ecs)
	}
}

// ResetSession puts the run back to its starting state: a new player at the
// spawn point, the camera at the origin, no effects, every essence back in
// place and the counters at zero. Best-run values are kept.
func ResetSession(ecs *ecs.ECS) {
	world := GetWorld(ecs)
	if world == nil || world.State != components.WorldReady {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		factory.DestroyPlayer(space, playerEntry)
	}
	factory.CreatePlayer(ecs, space, world.Spawn, world.Bounds)

	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		components.Camera.Set(cameraEntry, factory.NewCameraData(world.Bounds))
	}

	if fx := GetEffects(ecs); fx != nil {
		fx.Clear()
	}

	tags.Essence.Each(ecs.World, func(e *donburi.Entry) {
		components.Essence.Get(e).Collected = false
	})

	if session := GetSession(ecs); session != nil {
		session.Frame = 0
		session.EssenceCount = 0
		session.Score = 0
	}
}
