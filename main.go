package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/lumina/components"
	"github.com/automoto/lumina/config"
	"github.com/automoto/lumina/game"
	"github.com/automoto/lumina/scenes"
	"github.com/automoto/lumina/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// quitter is implemented by scenes that can end the game.
type quitter interface {
	QuitRequested() bool
}

type Game struct {
	bounds     image.Rectangle
	scene      Scene
	configPath string
	watcher    *config.Watcher
}

func NewGame(opts game.Options, configPath string) *Game {
	g := &Game{
		bounds:     image.Rectangle{},
		scene:      scenes.NewWorldScene(opts),
		configPath: configPath,
	}

	if configPath != "" {
		w, err := config.Watch(configPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", configPath, err)
		} else {
			g.watcher = w
		}
	}

	return g
}

func (g *Game) Update() error {
	g.reloadConfig()

	g.scene.Update()
	if q, ok := g.scene.(quitter); ok && q.QuitRequested() {
		if g.watcher != nil {
			_ = g.watcher.Close()
		}
		return ebiten.Termination
	}
	return nil
}

// reloadConfig re-applies the override file after it changes on disk.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Poll()
	if err != nil {
		log.Printf("Warning: Config watcher: %v", err)
	}
	if !changed {
		return
	}
	if err := config.LoadFile(g.configPath); err != nil {
		log.Printf("Warning: Could not reload config: %v", err)
		return
	}
	log.Printf("Reloaded %s", g.configPath)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tunables")
	world := flag.String("world", "", "embedded Tiled world name or path to a .tmx file")
	mapSource := flag.String("map", "", "bitmap URL or file to build the world from")
	mapScale := flag.Float64("map-scale", 0, "world units per bitmap pixel (default from config)")
	seed := flag.Uint64("seed", 0, "effects RNG seed; 0 uses the clock")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Printf("Warning: Could not load config: %v", err)
		}
	}
	config.Debug.Overlay = *debug
	config.Debug.Seed = *seed

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings := components.SettingsData{Minimap: true, Debug: config.Debug.Overlay}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		settings.Minimap = saved.Minimap
	}

	opts := game.Options{
		World:     *world,
		MapSource: *mapSource,
		MapScale:  *mapScale,
		Seed:      config.Debug.Seed,
		Settings:  settings,
		Best:      systems.LoadBestRun(),
	}

	if err := ebiten.RunGame(NewGame(opts, *configPath)); err != nil {
		log.Fatal(err)
	}
}
