package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/lumina/assets/shaders"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/fonts"
	"github.com/automoto/lumina/game"
	"github.com/automoto/lumina/systems"
	"github.com/automoto/lumina/systems/render"
	"github.com/automoto/lumina/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the simulation with the Ebiten renderers and the pause
// menu on top.
type WorldScene struct {
	ecs     *ecs.ECS
	opts    game.Options
	pauseUI *ui.PauseUI
	once    sync.Once
}

func NewWorldScene(opts game.Options) *WorldScene {
	return &WorldScene{opts: opts}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.GetOrCreatePause(ws.ecs).IsPaused {
		if session := systems.GetSession(ws.ecs); session != nil {
			ws.pauseUI.SetStats(fmt.Sprintf("%d essences  %d pts", session.EssenceCount, session.Score))
		}
		ws.pauseUI.Update()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)

	if systems.GetOrCreatePause(ws.ecs).IsPaused {
		ws.pauseUI.Draw(screen)
	}
}

// QuitRequested reports whether Quit was chosen in the pause menu.
func (ws *WorldScene) QuitRequested() bool {
	return ws.ecs != nil && systems.GetOrCreatePause(ws.ecs).Quit
}

func (ws *WorldScene) configure() {
	fonts.LoadDefaults()
	if err := shaders.Load(); err != nil {
		log.Printf("Warning: Could not compile shaders, using plain glows: %v", err)
	}

	if ws.opts.Input == nil {
		ws.opts.Input = KeyboardSource{}
	}
	e := game.BuildWorld(ws.opts)

	// Presentation-only systems
	e.AddSystem(render.UpdateMinimap)

	e.AddRenderer(cfg.Default, render.DrawBackground)
	e.AddRenderer(cfg.Default, render.DrawPlatforms)
	e.AddRenderer(cfg.Default, render.DrawEssences)
	e.AddRenderer(cfg.Default, render.DrawEffects)
	e.AddRenderer(cfg.Default, render.DrawPlayer)
	e.AddRenderer(cfg.Default, render.DrawLoading)
	e.AddRenderer(cfg.Default, render.DrawDebug)
	e.AddRenderer(cfg.HUD, render.DrawHUD)
	e.AddRenderer(cfg.HUD, render.DrawMinimap)

	ws.ecs = e
	ws.pauseUI = ui.NewPauseUI(
		func() { systems.SetPaused(e, false) },
		func() {
			systems.ResetSession(e)
			systems.SetPaused(e, false)
		},
		func() { systems.RequestQuit(e) },
	)
}
