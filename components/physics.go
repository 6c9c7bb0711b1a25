package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Position is an entity's center in world coordinates.
var Position = donburi.NewComponentType[math.Vec2]()

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Grounded bool
	OnGround *resolv.Object // Platform landed on this frame, nil while airborne
}

var Physics = donburi.NewComponentType[PhysicsData]()
