package components

import (
	"github.com/automoto/lumina/worlddata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // Top-left corner of the viewport in world coordinates
	Bounds   worlddata.Bounds
	ViewW    float64
	ViewH    float64
}

var Camera = donburi.NewComponentType[CameraData]()
