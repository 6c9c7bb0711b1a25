package factory

import (
	"github.com/automoto/lumina/archetypes"
	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/tags"
	"github.com/automoto/lumina/worlddata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player at spawn. The feet box is added to space
// and follows the player every frame.
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, spawn worlddata.Point, bounds worlddata.Bounds) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	r := cfg.Player.Radius
	band := cfg.Physics.GroundDetection
	feet := resolv.NewObject(spawn.X-r-1, spawn.Y+r-band-1, 2*r+2, band+2, tags.ResolvFeet)
	feet.Data = player
	space.Add(feet)

	components.Position.SetValue(player, math.Vec2{X: spawn.X, Y: spawn.Y})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Player.SetValue(player, components.PlayerData{
		Radius:      r,
		FacingRight: true,
		Bounds:      bounds,
		Spawn:       spawn,
		Feet:        feet,
	})

	return player
}

// DestroyPlayer removes the player and its feet box.
func DestroyPlayer(space *resolv.Space, player *donburi.Entry) {
	if feet := components.Player.Get(player).Feet; feet != nil && space != nil {
		space.Remove(feet)
	}
	player.Remove()
}
