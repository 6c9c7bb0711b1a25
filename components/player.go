package components

import (
	"github.com/automoto/lumina/worlddata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Radius      float64
	FacingRight bool

	JumpBuffered    bool // Latched while the jump key is held so holding never re-jumps
	JumpBufferTimer int  // Frames left for a buffered jump to fire

	Glow           float64 // Light intensity boost, decays to zero
	AttackCooldown int

	WasGrounded bool // Grounded state of the previous frame, for landing effects

	Bounds worlddata.Bounds
	Spawn  worlddata.Point

	// Feet is the broad-phase box under the player used to find
	// candidate platforms in the resolv space.
	Feet *resolv.Object
}

var Player = donburi.NewComponentType[PlayerData]()
