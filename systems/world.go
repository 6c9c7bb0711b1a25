package systems

import (
	"errors"
	"log"

	"github.com/automoto/lumina/components"
	"github.com/automoto/lumina/systems/factory"
	"github.com/automoto/lumina/worlddata"
	"github.com/yohamta/donburi/ecs"
)

var errNoResult = errors.New("world source closed without a result")

// UpdateWorld moves the world from Loading to Ready once its layout
// arrives. It never blocks: while nothing has arrived it returns straight
// away. A failed or invalid layout is replaced by the default world.
func UpdateWorld(ecs *ecs.ECS) {
	world := GetWorld(ecs)
	if world == nil || world.State == components.WorldReady {
		return
	}
	if world.Pending == nil {
		// Nothing is coming; fall back instead of waiting forever.
		buildWorld(ecs, world, fallbackLayout(world.Source, errNoResult))
		return
	}

	var res worlddata.Result
	select {
	case r, ok := <-world.Pending:
		if !ok {
			r = worlddata.Result{Err: errNoResult}
		}
		res = r
	default:
		return
	}
	world.Pending = nil

	layout := res.Layout
	switch {
	case res.Err != nil:
		layout = fallbackLayout(world.Source, res.Err)
	case layout == nil:
		layout = fallbackLayout(world.Source, errNoResult)
	default:
		if err := layout.Validate(); err != nil {
			layout = fallbackLayout(world.Source, err)
		}
	}
	buildWorld(ecs, world, layout)
}

func fallbackLayout(source string, err error) *worlddata.Layout {
	log.Printf("Warning: world %q unavailable, using %s: %v", source, worlddata.DefaultName, err)
	return worlddata.Default()
}

// buildWorld populates the ECS from layout and flips the world to Ready.
// Player and camera only exist from this point on.
func buildWorld(ecs *ecs.ECS, world *components.WorldData, layout *worlddata.Layout) {
	world.Layout = layout
	world.Bounds = layout.Bounds
	world.Spawn = layout.Spawn

	spaceEntry := factory.CreateSpace(ecs, layout.Bounds)
	space := components.Space.Get(spaceEntry)
	for _, rect := range layout.Platforms {
		factory.CreatePlatform(ecs, space, rect)
	}
	for _, e := range layout.Essences {
		factory.CreateEssence(ecs, e)
	}
	factory.CreatePlayer(ecs, space, layout.Spawn, layout.Bounds)
	factory.CreateCamera(ecs, layout.Bounds)

	world.State = components.WorldReady
	log.Printf("World %q ready: %d platforms, %d essences, %.0fx%.0f, spawn (%.0f, %.0f)",
		layout.Name, len(layout.Platforms), len(layout.Essences),
		layout.Bounds.Width, layout.Bounds.Height, layout.Spawn.X, layout.Spawn.Y)
}

// GetWorld returns the world component, or nil before the scene is built.
func GetWorld(ecs *ecs.ECS) *components.WorldData {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		return nil
	}
	return components.World.Get(entry)
}

// IsWorldReady reports whether gameplay entities exist.
func IsWorldReady(ecs *ecs.ECS) bool {
	world := GetWorld(ecs)
	return world != nil && world.State == components.WorldReady
}
