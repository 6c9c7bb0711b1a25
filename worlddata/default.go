package worlddata

import "github.com/automoto/lumina/gamemath"

// DefaultName is the name of the hand-authored layout.
const DefaultName = "lumina"

// Default returns the hand-authored world. It is also the fallback whenever
// another source fails.
func Default() *Layout {
	platforms := []gamemath.Rect{
		// Ground floor
		{X: 0, Y: 1000, W: 600, H: 40},

		// Left climb
		{X: 50, Y: 900, W: 80, H: 15},
		{X: 30, Y: 850, W: 60, H: 10},
		{X: 80, Y: 800, W: 70, H: 10},
		{X: 40, Y: 750, W: 60, H: 10},
		{X: 90, Y: 700, W: 80, H: 10},
		{X: 60, Y: 650, W: 50, H: 10},
		{X: 100, Y: 600, W: 70, H: 10},

		// Central pillar
		{X: 280, Y: 500, W: 25, H: 500},

		// Center-left ledges
		{X: 180, Y: 850, W: 120, H: 20},
		{X: 200, Y: 780, W: 100, H: 15},
		{X: 150, Y: 720, W: 90, H: 15},
		{X: 180, Y: 660, W: 80, H: 15},
		{X: 160, Y: 600, W: 100, H: 15},
		{X: 200, Y: 540, W: 80, H: 15},

		// Center-right
		{X: 350, Y: 900, W: 150, H: 20},
		{X: 400, Y: 820, W: 120, H: 15},
		{X: 370, Y: 760, W: 100, H: 15},
		{X: 420, Y: 700, W: 90, H: 15},
		{X: 380, Y: 640, W: 110, H: 15},

		// Right base
		{X: 550, Y: 850, W: 180, H: 20},
		{X: 600, Y: 780, W: 140, H: 15},
		{X: 570, Y: 720, W: 120, H: 15},
		{X: 620, Y: 660, W: 100, H: 15},

		// Right tower
		{X: 750, Y: 600, W: 25, H: 250},
		{X: 700, Y: 700, W: 80, H: 15},
		{X: 780, Y: 650, W: 70, H: 15},
		{X: 720, Y: 600, W: 60, H: 15},

		// Upper right stairs
		{X: 800, Y: 500, W: 150, H: 20},
		{X: 850, Y: 450, W: 120, H: 15},
		{X: 900, Y: 400, W: 100, H: 15},
		{X: 950, Y: 350, W: 80, H: 15},
		{X: 1000, Y: 300, W: 120, H: 15},

		// Upper center
		{X: 350, Y: 450, W: 120, H: 15},
		{X: 400, Y: 400, W: 100, H: 15},
		{X: 450, Y: 350, W: 80, H: 15},
		{X: 500, Y: 300, W: 90, H: 15},

		// Scattered small ledges
		{X: 120, Y: 550, W: 40, H: 8},
		{X: 140, Y: 500, W: 35, H: 8},
		{X: 110, Y: 450, W: 45, H: 8},
		{X: 130, Y: 400, W: 40, H: 8},
		{X: 100, Y: 350, W: 50, H: 8},

		// Scattered mid ledges
		{X: 520, Y: 580, W: 60, H: 8},
		{X: 540, Y: 530, W: 55, H: 8},
		{X: 510, Y: 480, W: 65, H: 8},
		{X: 560, Y: 430, W: 50, H: 8},

		// Far right
		{X: 1100, Y: 700, W: 120, H: 20},
		{X: 1150, Y: 650, W: 100, H: 15},
		{X: 1120, Y: 600, W: 90, H: 15},
		{X: 1180, Y: 550, W: 80, H: 15},
		{X: 1140, Y: 500, W: 100, H: 15},
		{X: 1200, Y: 450, W: 120, H: 15},

		// Far right stairs
		{X: 1250, Y: 400, W: 80, H: 15},
		{X: 1300, Y: 350, W: 70, H: 15},
		{X: 1350, Y: 300, W: 60, H: 15},
		{X: 1400, Y: 250, W: 100, H: 15},

		// Ceiling run
		{X: 200, Y: 280, W: 120, H: 12},
		{X: 350, Y: 260, W: 100, H: 12},
		{X: 480, Y: 240, W: 90, H: 12},
		{X: 600, Y: 220, W: 120, H: 12},
		{X: 750, Y: 200, W: 150, H: 12},
		{X: 950, Y: 180, W: 200, H: 12},
	}

	essences := []EssenceSpawn{
		// Starting area
		{X: 90, Y: 860, Kind: Small},
		{X: 70, Y: 760, Kind: Small},
		{X: 130, Y: 660, Kind: Small},

		// Center
		{X: 240, Y: 810, Kind: Large},
		{X: 220, Y: 620, Kind: Crystal},
		{X: 430, Y: 780, Kind: Large},

		// Right
		{X: 640, Y: 810, Kind: Large},
		{X: 730, Y: 660, Kind: Small},
		{X: 870, Y: 510, Kind: Crystal},

		// Ceiling
		{X: 260, Y: 240, Kind: Crystal},
		{X: 410, Y: 220, Kind: Large},
		{X: 530, Y: 200, Kind: Crystal},
		{X: 820, Y: 160, Kind: Crystal},
		{X: 1050, Y: 140, Kind: Crystal},

		// Far right
		{X: 1180, Y: 510, Kind: Large},
		{X: 1320, Y: 310, Kind: Crystal},
		{X: 1450, Y: 210, Kind: Crystal},

		// Hidden ledges
		{X: 150, Y: 460, Kind: Small},
		{X: 120, Y: 360, Kind: Small},
		{X: 550, Y: 490, Kind: Small},
		{X: 580, Y: 390, Kind: Small},
	}

	return &Layout{
		Name:      DefaultName,
		Platforms: platforms,
		Essences:  essences,
		Spawn:     Point{X: 100, Y: 900},
		Bounds:    BoundsOf(platforms),
	}
}
