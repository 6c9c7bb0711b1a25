package worlddata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/lumina/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names read from Tiled maps.
const (
	GroupPlatforms   = "Platforms"
	GroupEssences    = "Essences"
	GroupPlayerSpawn = "PlayerSpawn"
)

// LoadTMX parses a Tiled map into a layout. Platforms are the rectangles of
// the Platforms object group; essences are the objects of the Essences group,
// typed by their class (or a "kind" property); the first PlayerSpawn object
// is the spawn point. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Layout, error) {
	worldMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Bounds: Bounds{
			Width:  float64(worldMap.Width * worldMap.TileWidth),
			Height: float64(worldMap.Height * worldMap.TileHeight),
		},
	}

	spawnFound := false
	for _, og := range worldMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				layout.Platforms = append(layout.Platforms, gamemath.Rect{
					X: o.X,
					Y: o.Y,
					W: o.Width,
					H: o.Height,
				})
			}
		case GroupEssences:
			for _, o := range og.Objects {
				kindName := o.Class
				if kindName == "" {
					kindName = o.Type //nolint:staticcheck // older TMX files use type=
				}
				if kindName == "" {
					kindName = o.Properties.GetString("kind")
				}
				kind, err := ParseKind(kindName)
				if err != nil {
					return nil, fmt.Errorf("TMX %s: essence %d: %w", tmxPath, o.ID, err)
				}
				layout.Essences = append(layout.Essences, EssenceSpawn{X: o.X, Y: o.Y, Kind: kind})
			}
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 && !spawnFound {
				layout.Spawn = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
				spawnFound = true
			}
		}
	}

	// Maps drawn without a tile grid still get bounds from their geometry.
	extent := BoundsOf(layout.Platforms)
	if extent.Width > layout.Bounds.Width {
		layout.Bounds.Width = extent.Width
	}
	if extent.Height > layout.Bounds.Height {
		layout.Bounds.Height = extent.Height
	}

	if !spawnFound && len(layout.Platforms) > 0 {
		first := layout.Platforms[0]
		layout.Spawn = Point{X: first.X + first.W/2, Y: first.Y - 1}
	}

	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("TMX %s: %w", tmxPath, err)
	}
	return layout, nil
}

// LoadAllTMX discovers all .tmx files in dir within fsys, loads each one,
// and returns them keyed by stem name plus a sorted list of names.
func LoadAllTMX(fsys fs.FS, dir string) (map[string]*Layout, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	layouts := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		layout, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		layouts[layout.Name] = layout
		names = append(names, layout.Name)
	}

	sort.Strings(names)
	return layouts, names, nil
}
