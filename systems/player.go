package systems

import (
	"math"

	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/effects"
	"github.com/automoto/lumina/gamemath"
	"github.com/automoto/lumina/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePlayer advances the player one frame: input, physics, platform
// collision, effect decay and world clamp, in that order.
func UpdatePlayer(ecs *ecs.ECS) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	fx := GetEffects(ecs)
	if fx == nil {
		return
	}
	input := getOrCreateInput(ecs)

	player := components.Player.Get(entry)
	pos := components.Position.Get(entry)
	physics := components.Physics.Get(entry)

	handlePlayerInput(input, player, pos, physics, fx)
	updatePlayerPhysics(player, pos, physics, fx)
	player.WasGrounded = physics.Grounded
	resolvePlatformCollisions(player, pos, physics)
	emitMovementEffects(player, pos, physics, fx)
	decayPlayerEffects(player)
	constrainPlayerToWorld(player, pos, physics)
}

func handlePlayerInput(input *components.InputData, player *components.PlayerData, pos *dmath.Vec2, physics *components.PhysicsData, fx *effects.System) {
	if IsHeld(input, cfg.ActionMoveLeft) {
		physics.SpeedX = math.Max(physics.SpeedX-cfg.Player.Acceleration, -cfg.Player.MaxSpeed)
		player.FacingRight = false
	}
	if IsHeld(input, cfg.ActionMoveRight) {
		physics.SpeedX = math.Min(physics.SpeedX+cfg.Player.Acceleration, cfg.Player.MaxSpeed)
		player.FacingRight = true
	}

	jumpHeld := IsHeld(input, cfg.ActionJump)
	if jumpHeld && !player.JumpBuffered {
		jump(pos, physics, fx)
		player.JumpBuffered = true
		player.JumpBufferTimer = cfg.Player.JumpBufferFrames
	}
	if !jumpHeld {
		player.JumpBuffered = false
	}
}

func updatePlayerPhysics(player *components.PlayerData, pos *dmath.Vec2, physics *components.PhysicsData, fx *effects.System) {
	physics.SpeedX *= cfg.Player.Friction
	if !physics.Grounded {
		physics.SpeedY += cfg.Physics.Gravity
	}

	pos.X += physics.SpeedX
	pos.Y += physics.SpeedY

	// A jump pressed shortly before landing fires on the first grounded frame.
	if player.JumpBufferTimer > 0 {
		player.JumpBufferTimer--
		if physics.Grounded && player.JumpBufferTimer > 0 {
			jump(pos, physics, fx)
			player.JumpBufferTimer = 0
		}
	}
}

// jump launches the player if grounded and reports whether it did.
func jump(pos *dmath.Vec2, physics *components.PhysicsData, fx *effects.System) bool {
	if !physics.Grounded {
		return false
	}
	physics.SpeedY = cfg.Player.JumpImpulse
	physics.Grounded = false
	physics.OnGround = nil
	fx.AddJumpParticles(pos.X, pos.Y)
	return true
}

func emitMovementEffects(player *components.PlayerData, pos *dmath.Vec2, physics *components.PhysicsData, fx *effects.System) {
	if physics.Grounded && !player.WasGrounded {
		fx.AddLandingParticles(pos.X, pos.Y)
	}
	if math.Abs(physics.SpeedX) > cfg.Player.TrailSpeedThreshold && fx.Chance(cfg.Player.TrailChance) {
		fx.AddPlayerTrailParticle(pos.X, pos.Y, physics.SpeedX, physics.SpeedY)
	}
}

func decayPlayerEffects(player *components.PlayerData) {
	player.Glow = gamemath.DecayFloatToZero(player.Glow)
	player.AttackCooldown = gamemath.DecayToZero(player.AttackCooldown)
}

// constrainPlayerToWorld keeps the player inside the world horizontally and
// respawns it after falling past the bottom.
func constrainPlayerToWorld(player *components.PlayerData, pos *dmath.Vec2, physics *components.PhysicsData) {
	pos.X = gamemath.Clamp(pos.X, player.Radius, player.Bounds.Width-player.Radius)

	if pos.Y > player.Bounds.Height+cfg.Player.FallMargin {
		pos.X = player.Spawn.X
		pos.Y = player.Spawn.Y
		physics.SpeedX = 0
		physics.SpeedY = 0
	}
}

// UpdatePlayerActions fires the light pulse and slash on the frame their
// keys go down. It runs after essence collection.
func UpdatePlayerActions(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if WasJustPressed(input, cfg.ActionLightPulse) {
		PlayerLightPulse(ecs)
	}
	if WasJustPressed(input, cfg.ActionSlash) {
		PlayerSlash(ecs)
	}
}

func playerParts(ecs *ecs.ECS) (*donburi.Entry, *effects.System, bool) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	fx := GetEffects(ecs)
	return entry, fx, fx != nil
}

// PlayerJump jumps if the player stands on a platform. Airborne calls do
// nothing and return false.
func PlayerJump(ecs *ecs.ECS) bool {
	entry, fx, ok := playerParts(ecs)
	if !ok {
		return false
	}
	return jump(components.Position.Get(entry), components.Physics.Get(entry), fx)
}

// PlayerLightPulse raises the glow and sends out a ring of light. It has no
// cooldown.
func PlayerLightPulse(ecs *ecs.ECS) {
	entry, fx, ok := playerParts(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	pos := components.Position.Get(entry)

	player.Glow = cfg.Player.PulseGlow
	fx.AddLightPulse(pos.X, pos.Y)
}

// PlayerSlash swings toward the facing side. It does nothing while the
// attack is cooling down and reports whether a slash happened.
func PlayerSlash(ecs *ecs.ECS) bool {
	entry, fx, ok := playerParts(ecs)
	if !ok {
		return false
	}
	player := components.Player.Get(entry)
	if player.AttackCooldown > 0 {
		return false
	}
	pos := components.Position.Get(entry)

	player.AttackCooldown = cfg.Player.SlashCooldown
	player.Glow = cfg.Player.SlashGlow
	fx.AddSlashAttack(pos.X, pos.Y, player.FacingRight)
	return true
}
