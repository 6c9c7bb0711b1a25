package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/effects"
	"github.com/automoto/lumina/systems"
	"github.com/automoto/lumina/tags"
	"github.com/automoto/lumina/worlddata"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// hudRows are reserved at the top for the status line.
const hudRows = 1

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Renderer draws the world as character cells. The camera's viewport is
// squeezed onto whatever the terminal offers.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// cell maps a world position to a screen cell.
func (r *Renderer) cell(camera *components.CameraData, x, y float64) (int, int, bool) {
	cols, rows := r.screen.Size()
	rows -= hudRows
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	sx, sy := systems.WorldToScreen(camera, x, y)
	cx := int(math.Floor(sx / camera.ViewW * float64(cols)))
	cy := int(math.Floor(sy / camera.ViewH * float64(rows)))
	if cx < 0 || cx >= cols || cy < 0 || cy >= rows {
		return 0, 0, false
	}
	return cx, cy + hudRows, true
}

func (r *Renderer) put(camera *components.CameraData, x, y float64, ch rune, style tcell.Style) {
	if cx, cy, ok := r.cell(camera, x, y); ok {
		r.screen.SetContent(cx, cy, ch, nil, style)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Draw renders one frame and shows it.
func (r *Renderer) Draw(e *ecs.ECS) {
	r.screen.Clear()
	defer r.screen.Show()

	world := systems.GetWorld(e)
	camera := systems.GetCamera(e)
	if world == nil || world.State != components.WorldReady || camera == nil {
		source := ""
		if world != nil {
			source = world.Source
		}
		r.text(0, 0, "Loading world "+source+"...", styleFor(cfg.White))
		return
	}

	r.drawPlatforms(e, camera)
	r.drawEssences(e, camera)
	r.drawEffects(e, camera)
	r.drawPlayer(e, camera)
	r.drawStatus(e)
}

func (r *Renderer) drawPlatforms(e *ecs.ECS, camera *components.CameraData) {
	cols, rows := r.screen.Size()
	rows -= hudRows
	if cols <= 0 || rows <= 0 {
		return
	}
	cellW := camera.ViewW / float64(cols)
	cellH := camera.ViewH / float64(rows)
	style := styleFor(cfg.Palette.PlatformLight)

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		rect := components.Object.Get(entry).Rect()
		if !systems.IsVisible(camera, rect.X, rect.Y, rect.W, rect.H) {
			return
		}
		// Sample the rectangle once per cell, always including its far edges
		// so thin platforms still show.
		for y := rect.Y; ; y += cellH {
			y = math.Min(y, rect.Bottom()-0.01)
			for x := rect.X; ; x += cellW {
				x = math.Min(x, rect.Right()-0.01)
				r.put(camera, x, y, '=', style)
				if x >= rect.Right()-0.01 {
					break
				}
			}
			if y >= rect.Bottom()-0.01 {
				break
			}
		}
	})
}

func essenceRune(kind worlddata.Kind) rune {
	switch kind {
	case worlddata.Large:
		return 'o'
	case worlddata.Crystal:
		return '◆'
	default:
		return '*'
	}
}

func (r *Renderer) drawEssences(e *ecs.ECS, camera *components.CameraData) {
	tags.Essence.Each(e.World, func(entry *donburi.Entry) {
		essence := components.Essence.Get(entry)
		if essence.Collected {
			return
		}
		pos := components.Position.Get(entry)
		r.put(camera, pos.X, pos.Y, essenceRune(essence.Kind), styleFor(systems.EssenceColor(essence.Kind)))
	})
}

func (r *Renderer) drawEffects(e *ecs.ECS, camera *components.CameraData) {
	fx := systems.GetEffects(e)
	if fx == nil {
		return
	}
	for _, entity := range fx.Entities() {
		switch v := entity.(type) {
		case *effects.Particle:
			r.put(camera, v.X, v.Y, '.', styleFor(v.Color))
		case *effects.Pulse:
			style := styleFor(cfg.Palette.Magic)
			for i := 0; i < 16; i++ {
				angle := math.Pi * 2 * float64(i) / 16
				r.put(camera, v.X+math.Cos(angle)*v.Radius, v.Y+math.Sin(angle)*v.Radius, 'o', style)
			}
		case *effects.SlashTrail:
			style := styleFor(cfg.Palette.Warmth)
			for _, pt := range v.Points {
				r.put(camera, pt.X, pt.Y, '~', style)
			}
		}
	}
}

func (r *Renderer) drawPlayer(e *ecs.ECS, camera *components.CameraData) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pos := components.Position.Get(playerEntry)
	r.put(camera, pos.X, pos.Y, '@', styleFor(cfg.Palette.Player).Bold(true))
}

func (r *Renderer) drawStatus(e *ecs.ECS) {
	session := systems.GetSession(e)
	playerEntry, ok := tags.Player.First(e.World)
	if session == nil || !ok {
		return
	}
	pos := components.Position.Get(playerEntry)
	status := fmt.Sprintf("Essences %d  Score %d  (%.0f, %.0f)  Best %d/%d",
		session.EssenceCount, session.Score, math.Floor(pos.X), math.Floor(pos.Y),
		session.BestEssences, session.BestScore)
	if systems.GetOrCreatePause(e).IsPaused {
		status += "  [PAUSED]"
	}
	r.text(0, 0, status, styleFor(cfg.Palette.Essence))
}
