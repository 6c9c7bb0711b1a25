package factory

import (
	"github.com/automoto/lumina/archetypes"
	"github.com/automoto/lumina/components"
	"github.com/automoto/lumina/worlddata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld spawns the world entity in the Loading state. The layout
// arrives on pending.
func CreateWorld(ecs *ecs.ECS, source string, pending <-chan worlddata.Result) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)
	components.World.SetValue(world, components.WorldData{
		State:   components.WorldLoading,
		Pending: pending,
		Source:  source,
	})
	return world
}
