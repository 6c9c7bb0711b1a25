package render

import (
	"math"

	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/systems"
	"github.com/automoto/lumina/tags"
	"github.com/automoto/lumina/worlddata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	minimapMinHeight = 40
	minimapMaxHeight = 200
)

var minimapOp = &ebiten.DrawImageOptions{}

// MinimapData is the overview map's offscreen image and fade state.
type MinimapData struct {
	Image  *ebiten.Image
	Dirty  bool // Redraw Image on the next Draw
	Frames int

	Shown bool // Last visibility the fade was started for
	Alpha float32
	Fade  *gween.Tween
}

var Minimap = donburi.NewComponentType[MinimapData]()

// MinimapSize keeps the world's aspect ratio at the configured width.
func MinimapSize(bounds worlddata.Bounds) (int, int) {
	w := max(cfg.Minimap.Width, 1)
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return w, minimapMinHeight
	}
	h := int(math.Round(float64(w) * bounds.Height / bounds.Width))
	return w, min(max(h, minimapMinHeight), minimapMaxHeight)
}

// GetOrCreateMinimap returns the singleton minimap state.
func GetOrCreateMinimap(ecs *ecs.ECS) *MinimapData {
	entry, ok := Minimap.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(Minimap))
		Minimap.Get(entry).Dirty = true
	}
	return Minimap.Get(entry)
}

// UpdateMinimap eases the overlay in and out when it is toggled and marks
// the image for a redraw every few frames.
func UpdateMinimap(ecs *ecs.ECS) {
	mm := GetOrCreateMinimap(ecs)
	settings := systems.GetOrCreateSettings(ecs)

	if settings.Minimap != mm.Shown {
		mm.Shown = settings.Minimap
		target := float32(0)
		if mm.Shown {
			target = 1
		}
		mm.Fade = gween.New(mm.Alpha, target, cfg.Minimap.FadeSeconds, ease.OutQuad)
	}
	if mm.Fade != nil {
		alpha, done := mm.Fade.Update(float32(1.0 / float64(ebiten.TPS())))
		mm.Alpha = alpha
		if done {
			mm.Fade = nil
		}
	}

	mm.Frames++
	if mm.Frames%max(cfg.Minimap.RefreshFrames, 1) == 0 {
		mm.Dirty = true
	}
}

// DrawMinimap blits the overview in the top-right corner.
func DrawMinimap(ecs *ecs.ECS, screen *ebiten.Image) {
	world := systems.GetWorld(ecs)
	camera := systems.GetCamera(ecs)
	if world == nil || world.State != components.WorldReady || camera == nil {
		return
	}
	mm := GetOrCreateMinimap(ecs)
	if mm.Alpha <= 0 {
		return
	}

	w, h := MinimapSize(world.Bounds)
	if mm.Image == nil || mm.Image.Bounds().Dx() != w || mm.Image.Bounds().Dy() != h {
		if mm.Image != nil {
			mm.Image.Deallocate()
		}
		mm.Image = ebiten.NewImage(w, h)
		mm.Dirty = true
	}
	if mm.Dirty {
		renderMinimap(ecs, mm.Image, world, camera)
		mm.Dirty = false
	}

	minimapOp.GeoM.Reset()
	minimapOp.ColorScale.Reset()
	minimapOp.GeoM.Translate(float64(screen.Bounds().Dx()-w)-cfg.Minimap.Margin, cfg.Minimap.Margin)
	minimapOp.ColorScale.ScaleAlpha(mm.Alpha)
	screen.DrawImage(mm.Image, minimapOp)
}

func renderMinimap(ecs *ecs.ECS, img *ebiten.Image, world *components.WorldData, camera *components.CameraData) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scaleX := float64(w) / world.Bounds.Width
	scaleY := float64(h) / world.Bounds.Height

	img.Clear()
	img.Fill(cfg.Minimap.Background)

	// Every other platform keeps the map readable.
	if world.Layout != nil {
		for i, p := range world.Layout.Platforms {
			if i%2 != 0 {
				continue
			}
			vector.FillRect(img,
				float32(p.X*scaleX), float32(p.Y*scaleY),
				float32(math.Max(1, p.W*scaleX)), float32(math.Max(1, p.H*scaleY)),
				cfg.Palette.PlatformMid, false)
		}
	}

	tags.Essence.Each(ecs.World, func(e *donburi.Entry) {
		if components.Essence.Get(e).Collected {
			return
		}
		pos := components.Position.Get(e)
		kind := components.Essence.Get(e).Kind
		vector.FillRect(img, float32(pos.X*scaleX-1), float32(pos.Y*scaleY-1), 3, 3, systems.EssenceColor(kind), false)
	})

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		pos := components.Position.Get(playerEntry)
		fillCircle(img, pos.X*scaleX, pos.Y*scaleY, 3, cfg.Palette.Player)
	}

	vector.StrokeRect(img,
		float32(camera.Position.X*scaleX), float32(camera.Position.Y*scaleY),
		float32(camera.ViewW*scaleX), float32(camera.ViewH*scaleY),
		1, fade(cfg.White, 0.5), false)
}
