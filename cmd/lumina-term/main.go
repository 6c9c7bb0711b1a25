// Command lumina-term plays Lumina in a terminal. It drives the same
// simulation as the windowed game and draws it with tcell.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/automoto/lumina/components"
	"github.com/automoto/lumina/config"
	"github.com/automoto/lumina/game"
	"github.com/automoto/lumina/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	TPS           = 60
	FrameDuration = time.Second / TPS
)

// Game owns the terminal loop.
type Game struct {
	screen   tcell.Screen
	ecs      *ecs.ECS
	input    *KeyInput
	renderer *Renderer
}

func NewGame(screen tcell.Screen, opts game.Options) *Game {
	input := NewKeyInput()
	opts.Input = input
	return &Game{
		screen:   screen,
		ecs:      game.BuildWorld(opts),
		input:    input,
		renderer: NewRenderer(screen),
	}
}

// Step advances the simulation one tick and redraws.
func (g *Game) Step() bool {
	g.ecs.Update()
	g.renderer.Draw(g.ecs)
	return !systems.GetOrCreatePause(g.ecs).Quit
}

// HandleEvent applies one terminal event. It returns false when the
// player asked to leave.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.input.HandleKey(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) run() {
	// Start input handling goroutine
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go g.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	for {
		// Drain input without blocking
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				if !g.HandleEvent(ev) {
					return
				}
			default:
				break drain
			}
		}

		if !g.Step() {
			return
		}

		<-ticker.C
	}
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tunables")
	world := flag.String("world", "", "embedded Tiled world name or path to a .tmx file")
	mapSource := flag.String("map", "", "bitmap URL or file to build the world from")
	mapScale := flag.Float64("map-scale", 0, "world units per bitmap pixel (default from config)")
	seed := flag.Uint64("seed", 0, "effects RNG seed; 0 uses the clock")
	logPath := flag.String("log", "", "append log lines to this file (default: discard)")
	flag.Parse()

	// The terminal shows the screen, so log lines only go to -log.
	// Fatal errors still reach stderr.
	fatal := log.New(os.Stderr, "lumina-term: ", 0)
	logOut, closeLog, err := openLog(*logPath)
	if err != nil {
		fatal.Fatal(err)
	}
	defer closeLog()
	log.SetOutput(logOut)

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Printf("Warning: Could not load config: %v", err)
		}
	}
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		fatal.Fatal(err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	g := NewGame(screen, game.Options{
		World:     *world,
		MapSource: *mapSource,
		MapScale:  *mapScale,
		Seed:      *seed,
		Settings:  components.SettingsData{},
		Best:      systems.LoadBestRun(),
	})
	g.run()
}

// openLog opens path for appending. An empty path discards everything.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
