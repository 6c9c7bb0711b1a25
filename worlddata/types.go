// Package worlddata produces world layouts: the hand-authored default, Tiled
// maps and bitmap scans. It has no dependencies on ebitengine, donburi, or
// resolv, so layouts can be built and tested as plain data.
package worlddata

import (
	"fmt"

	"github.com/automoto/lumina/gamemath"
)

// Kind is an essence variant. It sets score weight and look.
type Kind int

const (
	Small Kind = iota
	Large
	Crystal
)

func (k Kind) String() string {
	switch k {
	case Small:
		return "small"
	case Large:
		return "large"
	case Crystal:
		return "crystal"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps "small", "large" and "crystal" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "small":
		return Small, nil
	case "large":
		return Large, nil
	case "crystal":
		return Crystal, nil
	}
	return Small, fmt.Errorf("unknown essence kind %q", s)
}

// EssenceSpawn places a collectible.
type EssenceSpawn struct {
	X, Y float64
	Kind Kind
}

// Point is a world position.
type Point struct {
	X, Y float64
}

// Bounds is the immutable extent of a generated world. It is produced once
// per layout and handed to the camera and player.
type Bounds struct {
	Width, Height float64
}

// Layout is everything needed to build a world.
type Layout struct {
	Name      string
	Platforms []gamemath.Rect
	Essences  []EssenceSpawn
	Spawn     Point
	Bounds    Bounds
}

// Result is delivered by an asynchronous load.
type Result struct {
	Layout *Layout
	Err    error
}

// BoundsOf returns the smallest bounds anchored at the origin that contain
// every rectangle.
func BoundsOf(rects []gamemath.Rect) Bounds {
	var b Bounds
	for _, r := range rects {
		if r.Right() > b.Width {
			b.Width = r.Right()
		}
		if r.Bottom() > b.Height {
			b.Height = r.Bottom()
		}
	}
	return b
}

// Validate checks that a layout can be played.
func (l *Layout) Validate() error {
	if len(l.Platforms) == 0 {
		return ErrNoPlatforms
	}
	if l.Bounds.Width <= 0 || l.Bounds.Height <= 0 {
		return fmt.Errorf("layout %s: empty bounds %vx%v", l.Name, l.Bounds.Width, l.Bounds.Height)
	}
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("layout %s: platform %d has no area", l.Name, i)
		}
	}
	return nil
}
