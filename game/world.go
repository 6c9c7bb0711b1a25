// Package game assembles the simulation. It has no rendering or window
// dependencies, so the windowed and terminal frontends share it.
package game

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/automoto/lumina/assets"
	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/systems"
	"github.com/automoto/lumina/systems/factory"
	"github.com/automoto/lumina/worlddata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options selects where the world comes from and how the run starts.
type Options struct {
	// World is an embedded Tiled world name or a path to a .tmx file.
	World string
	// MapSource is a bitmap URL or file. It wins over World.
	MapSource string
	MapScale  float64

	// Pending overrides every other source when set.
	Pending <-chan worlddata.Result

	// Seed for effect jitter; zero picks one from the clock.
	Seed uint64

	Input    components.InputSource
	Settings components.SettingsData
	Best     systems.BestRun
}

// BuildWorld creates the simulation: every update system in frame order,
// the session, the effect system and a world entity waiting for its
// layout. It draws nothing, so any frontend can drive it by calling Update.
func BuildWorld(opts Options) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateWorld)

	// Gameplay, skipped while loading or paused
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateReset))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEssences))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerActions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSession))

	sessionEntry := factory.CreateSession(e, opts.Settings)
	session := components.Session.Get(sessionEntry)
	session.BestEssences = opts.Best.Essences
	session.BestScore = opts.Best.Score

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	factory.CreateEffects(e, rand.New(rand.NewPCG(seed, seed)))

	systems.SetInputSource(e, opts.Input)
	systems.EssenceCollected.Subscribe(e.World, systems.OnEssenceCollected)

	source, pending := openWorld(opts)
	factory.CreateWorld(e, source, pending)

	return e
}

// openWorld starts loading the selected world. Synchronous sources are
// loaded here and handed over on an already-filled channel.
func openWorld(opts Options) (string, <-chan worlddata.Result) {
	switch {
	case opts.Pending != nil:
		return "pending", opts.Pending
	case opts.MapSource != "":
		scale := opts.MapScale
		if scale <= 0 {
			scale = cfg.World.MapScale
		}
		timeout := time.Duration(cfg.World.FetchTimeoutSeconds) * time.Second
		return opts.MapSource, worlddata.LoadAsyncTimeout(opts.MapSource, scale, timeout)
	case strings.HasSuffix(opts.World, ".tmx"):
		layout, err := worlddata.LoadTMX(os.DirFS(filepath.Dir(opts.World)), filepath.Base(opts.World))
		return opts.World, worlddata.Ready(layout, err)
	}

	name := opts.World
	if name == "" {
		name = cfg.World.DefaultName
	}
	if name == "" || name == worlddata.DefaultName {
		return worlddata.DefaultName, worlddata.Ready(worlddata.Default(), nil)
	}
	layout, err := assets.LoadWorld(name)
	return name, worlddata.Ready(layout, err)
}
