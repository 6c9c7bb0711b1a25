package render

import (
	"fmt"
	"math"

	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/fonts"
	"github.com/automoto/lumina/systems"
	"github.com/automoto/lumina/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudMargin     = 10
	hudPadding    = 8
	hudLineHeight = 18
	hudPanelWidth = 190
)

const controlsHint = "A/D move  Space jump  Q pulse  E slash  M map  R reset  Esc pause"

// HUDLines is the text of the stats panel.
func HUDLines(session *components.SessionData, x, y float64) []string {
	return []string{
		fmt.Sprintf("Essences: %d", session.EssenceCount),
		fmt.Sprintf("Score: %d", session.Score),
		fmt.Sprintf("Position: %d, %d", int(math.Floor(x)), int(math.Floor(y))),
		fmt.Sprintf("Best: %d essences / %d pts", session.BestEssences, session.BestScore),
	}
}

// DrawHUD renders the stats panel in the top-left corner and the controls
// hint along the bottom.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := systems.GetSession(ecs)
	playerEntry, ok := tags.Player.First(ecs.World)
	if session == nil || !ok {
		return
	}
	pos := components.Position.Get(playerEntry)
	lines := HUDLines(session, pos.X, pos.Y)

	vector.FillRect(screen,
		hudMargin, hudMargin,
		hudPanelWidth, float32(len(lines)*hudLineHeight+hudPadding*2),
		cfg.BlackOverlay, false)

	face := fonts.HUD.Get()
	for i, line := range lines {
		clr := cfg.White
		if i == 0 {
			clr = cfg.Palette.Essence
		}
		text.Draw(screen, line, face, hudMargin+hudPadding, hudMargin+hudPadding+(i+1)*hudLineHeight-4, clr)
	}

	small := fonts.HUDSmall.Get()
	text.Draw(screen, controlsHint, small, hudMargin, screen.Bounds().Dy()-hudMargin, cfg.Grey)
}

// DrawLoading shows where the world is coming from until it is ready.
func DrawLoading(ecs *ecs.ECS, screen *ebiten.Image) {
	world := systems.GetWorld(ecs)
	if world == nil || world.State == components.WorldReady {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := screen.Bounds().Dy()

	title := "Loading world"
	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), height/2, cfg.White)

	if world.Source != "" {
		small := fonts.HUDSmall.Get()
		text.Draw(screen, world.Source, small, centerTextX(world.Source, small, width), height/2+28, cfg.Grey)
	}
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}
