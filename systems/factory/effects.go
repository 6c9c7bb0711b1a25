package factory

import (
	"github.com/automoto/lumina/archetypes"
	"github.com/automoto/lumina/components"
	"github.com/automoto/lumina/effects"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEffects(ecs *ecs.ECS, rng effects.Rand) *donburi.Entry {
	fx := archetypes.Effects.Spawn(ecs)
	components.Effects.SetValue(fx, components.EffectsData{System: effects.New(rng)})
	return fx
}
