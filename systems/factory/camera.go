package factory

import (
	"github.com/automoto/lumina/archetypes"
	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/worlddata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, bounds worlddata.Bounds) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, NewCameraData(bounds))
	return camera
}

// NewCameraData returns a camera at the world origin sized to the screen.
func NewCameraData(bounds worlddata.Bounds) *components.CameraData {
	return &components.CameraData{
		Bounds: bounds,
		ViewW:  float64(cfg.C.Width),
		ViewH:  float64(cfg.C.Height),
	}
}
