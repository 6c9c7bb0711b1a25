package factory

import (
	"math"

	"github.com/automoto/lumina/archetypes"
	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/worlddata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision space covering the world plus the fall
// margin below it.
func CreateSpace(ecs *ecs.ECS, bounds worlddata.Bounds) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	cell := max(cfg.Physics.CellSize, 1)
	width := wholeCells(bounds.Width, cell)
	height := wholeCells(bounds.Height+cfg.Player.FallMargin, cell)
	spaceData := resolv.NewSpace(width, height, cell, cell)
	components.Space.Set(space, spaceData)
	return space
}

// wholeCells rounds size up to a whole number of cells plus one spare.
// resolv drops the last partial column or row of a space, and the feet
// box reaches one unit past the world edge.
func wholeCells(size float64, cell int) int {
	return (int(math.Ceil(size/float64(cell))) + 1) * cell
}
