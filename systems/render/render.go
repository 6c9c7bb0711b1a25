package render

import (
	"image/color"
	"math"

	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/effects"
	"github.com/automoto/lumina/gamemath"
	"github.com/automoto/lumina/systems"
	"github.com/automoto/lumina/tags"
	"github.com/automoto/lumina/worlddata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	backgroundStrip *ebiten.Image
	backgroundKey   [3]color.RGBA
)

// Entities are culled against the viewport grown by this much so glows
// don't pop at the edges.
const cullPadding = 32.0

// BackgroundColor samples the far-mid-near gradient at t in [0, 1].
func BackgroundColor(t float64) color.RGBA {
	t = gamemath.Clamp(t, 0, 1)
	from, to := cfg.Palette.BackgroundFar, cfg.Palette.BackgroundMid
	if t >= 0.5 {
		from, to = cfg.Palette.BackgroundMid, cfg.Palette.BackgroundNear
		t -= 0.5
	}
	t *= 2
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(gamemath.Lerp(float64(a), float64(b), t)))
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: 255,
	}
}

// DrawBackground fills the screen with the vertical gradient. The gradient
// is a one-pixel-wide strip rebuilt only when the palette or height changes.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	key := [3]color.RGBA{cfg.Palette.BackgroundFar, cfg.Palette.BackgroundMid, cfg.Palette.BackgroundNear}
	if backgroundStrip == nil || backgroundStrip.Bounds().Dy() != height || backgroundKey != key {
		pixels := make([]byte, 4*height)
		for y := 0; y < height; y++ {
			c := BackgroundColor(float64(y) / float64(max(height-1, 1)))
			copy(pixels[4*y:], []byte{c.R, c.G, c.B, c.A})
		}
		if backgroundStrip != nil {
			backgroundStrip.Deallocate()
		}
		backgroundStrip = ebiten.NewImage(1, height)
		backgroundStrip.WritePixels(pixels)
		backgroundKey = key
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(float64(width), 1)
	screen.DrawImage(backgroundStrip, drawOp)
}

// PlatformLight is the brightness multiplier of a platform whose center is
// dist away from the player.
func PlatformLight(dist, lightRadius float64) float64 {
	if lightRadius <= 0 || dist >= lightRadius {
		return 1
	}
	return 1 + (1-dist/lightRadius)*0.4
}

// DrawPlatforms renders every visible platform, brightened near the player.
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := systems.GetCamera(ecs)
	if camera == nil {
		return
	}

	// Without a player every platform gets the base shade.
	px, py := math.Inf(1), math.Inf(1)
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		pos := components.Position.Get(playerEntry)
		px, py = pos.X, pos.Y
	}
	edge := fade(cfg.White, 0.1)

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Object.Get(e).Rect()
		if !systems.IsVisible(camera, r.X, r.Y, r.W, r.H) {
			return
		}
		cx, cy := r.Center()
		clr := scaleRGB(cfg.Palette.PlatformLight, PlatformLight(gamemath.Dist(px, py, cx, cy), cfg.Player.LightRadius))

		sx, sy := systems.WorldToScreen(camera, r.X, r.Y)
		vector.FillRect(screen, float32(sx), float32(sy), float32(r.W), float32(r.H), clr, false)
		vector.StrokeRect(screen, float32(sx), float32(sy), float32(r.W), float32(r.H), 1, edge, false)
	})
}

// EssenceBob is the vertical float offset of an essence at x.
func EssenceBob(frame int, x float64) float64 {
	return math.Sin(float64(frame)*cfg.Essence.BobSpeed+x*0.01) * cfg.Essence.BobAmplitude
}

// EssenceGlow pulses between 0.4 and 1.0.
func EssenceGlow(frame int, y float64) float64 {
	return math.Sin(float64(frame)*cfg.Essence.BobSpeed*1.5+y*0.01)*0.3 + 0.7
}

// DrawEssences renders uncollected essences: circles for small and large,
// hexagons for crystals.
func DrawEssences(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := systems.GetCamera(ecs)
	if camera == nil {
		return
	}
	frame := 0
	if session := systems.GetSession(ecs); session != nil {
		frame = session.Frame
	}

	tags.Essence.Each(ecs.World, func(e *donburi.Entry) {
		essence := components.Essence.Get(e)
		if essence.Collected {
			return
		}
		pos := components.Position.Get(e)
		size := systems.EssenceSize(essence.Kind)
		if !systems.IsVisible(camera, pos.X-size-cullPadding, pos.Y-size-cullPadding, 2*(size+cullPadding), 2*(size+cullPadding)) {
			return
		}

		glow := EssenceGlow(frame, pos.Y)
		clr := systems.EssenceColor(essence.Kind)
		sx, sy := systems.WorldToScreen(camera, pos.X, pos.Y+EssenceBob(frame, pos.X))

		drawGlow(screen, sx, sy, size+12*glow, clr, 0.5*glow)
		if essence.Kind == worlddata.Crystal {
			fillHexagon(screen, sx, sy, size, fade(clr, glow))
		} else {
			fillCircle(screen, sx, sy, size, fade(clr, glow))
		}
	})
}

// DrawEffects renders particles, pulses and slash trails in spawn order.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := systems.GetCamera(ecs)
	fx := systems.GetEffects(ecs)
	if camera == nil || fx == nil {
		return
	}

	for _, entity := range fx.Entities() {
		switch e := entity.(type) {
		case *effects.Particle:
			drawParticle(screen, camera, e)
		case *effects.Pulse:
			drawPulse(screen, camera, e)
		case *effects.SlashTrail:
			drawSlash(screen, camera, e)
		}
	}
}

func drawParticle(screen *ebiten.Image, camera *components.CameraData, p *effects.Particle) {
	alpha := p.Alpha()
	r := p.Size * alpha
	if r <= 0 || !systems.IsVisible(camera, p.X-cullPadding, p.Y-cullPadding, 2*cullPadding, 2*cullPadding) {
		return
	}
	sx, sy := systems.WorldToScreen(camera, p.X, p.Y)
	drawGlow(screen, sx, sy, r+p.Glow*2, p.Color, alpha*0.4)
	fillCircle(screen, sx, sy, r, fade(p.Color, alpha*0.8))
}

func drawPulse(screen *ebiten.Image, camera *components.CameraData, p *effects.Pulse) {
	if p.Radius <= 0 {
		return
	}
	alpha := p.Alpha()
	sx, sy := systems.WorldToScreen(camera, p.X, p.Y)
	strokeCircle(screen, sx, sy, p.Radius, 3, fade(cfg.Palette.Magic, alpha*0.4))
	strokeCircle(screen, sx, sy, p.Radius, 1, fade(cfg.White, alpha*0.2))
}

func drawSlash(screen *ebiten.Image, camera *components.CameraData, s *effects.SlashTrail) {
	warmth := cfg.Palette.Warmth

	if len(s.Points) == 1 {
		pt := s.Points[0]
		sx, sy := systems.WorldToScreen(camera, pt.X, pt.Y)
		drawGlow(screen, sx, sy, 11, warmth, pt.Alpha()*0.5)
		fillCircle(screen, sx, sy, 5, fade(warmth, pt.Alpha()))
		return
	}

	for _, seg := range s.Segments() {
		x0, y0 := systems.WorldToScreen(camera, seg.X0, seg.Y0)
		x1, y1 := systems.WorldToScreen(camera, seg.X1, seg.Y1)
		outer := fade(warmth, seg.Alpha)
		strokeLine(screen, x0, y0, x1, y1, seg.Thickness, outer)
		// Round caps
		fillCircle(screen, x0, y0, seg.Thickness/2, outer)
		fillCircle(screen, x1, y1, seg.Thickness/2, outer)

		strokeLine(screen, x0, y0, x1, y1, seg.Thickness*0.3, fade(cfg.White, seg.Alpha*0.7))
	}
}

// DrawPlayer renders the aura, the body and the bright core.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := systems.GetCamera(ecs)
	if camera == nil {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	pos := components.Position.Get(playerEntry)
	sx, sy := systems.WorldToScreen(camera, pos.X, pos.Y)

	drawGlow(screen, sx, sy, player.Radius+15+player.Glow, cfg.White, 0.6)
	drawGlow(screen, sx, sy, player.Radius+6, cfg.Palette.PlayerGlow, 0.5)
	fillCircle(screen, sx, sy, player.Radius, cfg.Palette.Player)
	fillCircle(screen, sx, sy, player.Radius*0.5, cfg.White)
}
