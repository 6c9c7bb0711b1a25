package assets

import (
	"embed"
	"fmt"
	"sync"

	"github.com/automoto/lumina/worlddata"
)

var (
	//go:embed worlds/*.tmx
	worldFS embed.FS
)

const worldDir = "worlds"

var (
	worldsOnce sync.Once
	worlds     map[string]*worlddata.Layout
	worldNames []string
	worldsErr  error
)

func loadWorlds() {
	worlds, worldNames, worldsErr = worlddata.LoadAllTMX(worldFS, worldDir)
}

// WorldNames lists the embedded Tiled worlds, sorted.
func WorldNames() []string {
	worldsOnce.Do(loadWorlds)
	return worldNames
}

// LoadWorld returns a fresh copy of the embedded world called name.
func LoadWorld(name string) (*worlddata.Layout, error) {
	worldsOnce.Do(loadWorlds)
	if worldsErr != nil {
		return nil, worldsErr
	}
	layout, ok := worlds[name]
	if !ok {
		return nil, fmt.Errorf("world %q not found (have %v)", name, worldNames)
	}
	return cloneLayout(layout), nil
}

func cloneLayout(l *worlddata.Layout) *worlddata.Layout {
	out := *l
	out.Platforms = append(out.Platforms[:0:0], l.Platforms...)
	out.Essences = append(out.Essences[:0:0], l.Essences...)
	return &out
}
