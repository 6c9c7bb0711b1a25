package systems

import (
	"github.com/automoto/lumina/components"
	"github.com/automoto/lumina/config"
	"github.com/automoto/lumina/gamemath"
	"github.com/automoto/lumina/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pos := components.Position.Get(playerEntry)

	FollowTarget(camera, pos.X, pos.Y, config.Camera.FollowSmoothing)
}

// FollowTarget centers the viewport on (x, y), clamps that to the world,
// then closes a fraction of the remaining distance.
func FollowTarget(camera *components.CameraData, x, y, smoothing float64) {
	targetX, targetY := CameraTarget(camera, x, y)
	camera.Position.X = gamemath.Lerp(camera.Position.X, targetX, smoothing)
	camera.Position.Y = gamemath.Lerp(camera.Position.Y, targetY, smoothing)
}

// CameraTarget is the clamped top-left the camera is heading for. Worlds
// smaller than the viewport pin it to the origin.
func CameraTarget(camera *components.CameraData, x, y float64) (float64, float64) {
	targetX := gamemath.Clamp(x-camera.ViewW/2, 0, camera.Bounds.Width-camera.ViewW)
	targetY := gamemath.Clamp(y-camera.ViewH/2, 0, camera.Bounds.Height-camera.ViewH)
	return targetX, targetY
}

// WorldToScreen translates a world position by the camera offset.
func WorldToScreen(camera *components.CameraData, x, y float64) (float64, float64) {
	return x - camera.Position.X, y - camera.Position.Y
}

// ScreenToWorld is the inverse of WorldToScreen.
func ScreenToWorld(camera *components.CameraData, x, y float64) (float64, float64) {
	return x + camera.Position.X, y + camera.Position.Y
}

// IsVisible reports whether a box touches the viewport.
func IsVisible(camera *components.CameraData, x, y, w, h float64) bool {
	return x+w >= camera.Position.X &&
		x <= camera.Position.X+camera.ViewW &&
		y+h >= camera.Position.Y &&
		y <= camera.Position.Y+camera.ViewH
}

// GetCamera returns the camera, or nil while the world is loading.
func GetCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}
