package systems

import (
	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/gamemath"
	"github.com/automoto/lumina/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// resolvePlatformCollisions re-derives the grounded state. Platforms only
// block from above: the player lands when falling or resting (vy >= 0) and
// its bottom is on a platform's top edge or within the detection band below
// the platform. When several platforms qualify, the highest surface wins so
// the result does not depend on platform order.
func resolvePlatformCollisions(player *components.PlayerData, pos *dmath.Vec2, physics *components.PhysicsData) {
	physics.Grounded = false
	physics.OnGround = nil

	var candidates []*resolv.Object
	if feet := player.Feet; feet != nil {
		placeFeet(feet, pos.X, pos.Y, player.Radius)
		if check := feet.Check(0, 0, tags.ResolvPlatform); check != nil {
			candidates = check.ObjectsByTags(tags.ResolvPlatform)
		}
	}

	var best *resolv.Object
	for _, obj := range candidates {
		rect := gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
		if !LandsOn(pos.X, pos.Y, physics.SpeedY, player.Radius, rect) {
			continue
		}
		if best == nil || obj.Y < best.Y {
			best = obj
		}
	}
	if best == nil {
		return
	}

	pos.Y = best.Y - player.Radius
	physics.SpeedY = 0
	physics.Grounded = true
	physics.OnGround = best
}

// LandsOn is the landing test for a circle of radius r centered at (x, y)
// moving with vertical speed vy against platform p.
func LandsOn(x, y, vy, r float64, p gamemath.Rect) bool {
	band := cfg.Physics.GroundDetection
	return x+r > p.X &&
		x-r < p.Right() &&
		y+r >= p.Y &&
		y+r <= p.Bottom()+band &&
		vy >= 0
}

// placeFeet sizes the feet object so it covers every platform LandsOn could
// accept. It is one unit larger on each side because resolv treats the far
// edge of an object as exclusive when picking cells.
func placeFeet(feet *resolv.Object, x, y, r float64) {
	band := cfg.Physics.GroundDetection
	feet.X = x - r - 1
	feet.Y = y + r - band - 1
	feet.W = 2*r + 2
	feet.H = band + 2
	feet.Update()
}
