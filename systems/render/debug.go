package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/lumina/components"
	"github.com/automoto/lumina/systems"
	"github.com/automoto/lumina/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := systems.GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	camera := systems.GetCamera(ecs)
	if camera == nil {
		return // No camera yet
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			if !systems.IsVisible(camera, obj.X, obj.Y, obj.W, obj.H) {
				continue
			}
			x, y := systems.WorldToScreen(camera, obj.X, obj.Y)

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlatform) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvFeet) {
				c = color.RGBA{255, 0, 255, 255} // Magenta
			}

			// Draw outline
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	ebitenutil.DebugPrintAt(screen, debugText(ecs), 10, screen.Bounds().Dy()-110)
}

func debugText(ecs *ecs.ECS) string {
	s := fmt.Sprintf("TPS %.0f  FPS %.0f\n", ebiten.ActualTPS(), ebiten.ActualFPS())

	if fx := systems.GetEffects(ecs); fx != nil {
		particles, pulses, slashes := fx.Counts()
		s += fmt.Sprintf("effects %d (particles %d, pulses %d, slashes %d)\n", fx.Len(), particles, pulses, slashes)
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		pos := components.Position.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		player := components.Player.Get(playerEntry)
		s += fmt.Sprintf("pos (%.1f, %.1f)  vel (%.2f, %.2f)\n", pos.X, pos.Y, physics.SpeedX, physics.SpeedY)
		s += fmt.Sprintf("grounded %v  glow %.1f  cooldown %d\n", physics.Grounded, player.Glow, player.AttackCooldown)
	}

	if world := systems.GetWorld(ecs); world != nil {
		s += fmt.Sprintf("world %s (%s)", world.Source, world.State)
	}
	return s
}
