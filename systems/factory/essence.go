package factory

import (
	"github.com/automoto/lumina/archetypes"
	"github.com/automoto/lumina/components"
	"github.com/automoto/lumina/worlddata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateEssence(ecs *ecs.ECS, spawn worlddata.EssenceSpawn) *donburi.Entry {
	essence := archetypes.Essence.Spawn(ecs)
	components.Position.SetValue(essence, math.Vec2{X: spawn.X, Y: spawn.Y})
	components.Essence.SetValue(essence, components.EssenceData{Kind: spawn.Kind})

	return essence
}
