package factory

import (
	"github.com/automoto/lumina/archetypes"
	"github.com/automoto/lumina/components"
	"github.com/automoto/lumina/gamemath"
	"github.com/automoto/lumina/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, space *resolv.Space, rect gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	object := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvPlatform)
	object.Data = platform
	space.Add(object)
	components.Object.SetValue(platform, components.ObjectData{Object: object})

	return platform
}
