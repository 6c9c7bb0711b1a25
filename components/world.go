package components

import (
	"github.com/automoto/lumina/worlddata"
	"github.com/yohamta/donburi"
)

// WorldState is the world lifecycle.
type WorldState int

const (
	WorldLoading WorldState = iota
	WorldReady
)

func (s WorldState) String() string {
	if s == WorldReady {
		return "ready"
	}
	return "loading"
}

// WorldData tracks where the layout comes from. Bounds and Spawn are only
// meaningful once State is WorldReady and never change afterwards.
type WorldData struct {
	State   WorldState
	Layout  *worlddata.Layout
	Bounds  worlddata.Bounds
	Spawn   worlddata.Point
	Pending <-chan worlddata.Result
	Source  string // Human-readable origin for logs and the HUD
}

var World = donburi.NewComponentType[WorldData]()
