package archetypes

import (
	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Essence = newArchetype(
		tags.Essence,
		components.Essence,
		components.Position,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
		components.Physics,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	World = newArchetype(
		components.World,
	)
	Effects = newArchetype(
		components.Effects,
	)
	Session = newArchetype(
		components.Session,
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
