package systems

import (
	"github.com/automoto/lumina/components"
	"github.com/automoto/lumina/effects"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances every particle, pulse and slash trail.
func UpdateEffects(ecs *ecs.ECS) {
	if fx := GetEffects(ecs); fx != nil {
		fx.Update()
	}
}

// GetEffects returns the effect system, or nil if none was created.
func GetEffects(ecs *ecs.ECS) *effects.System {
	entry, ok := components.Effects.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Effects.Get(entry).System
}
