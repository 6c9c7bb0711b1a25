package components

import (
	"github.com/automoto/lumina/effects"
	"github.com/yohamta/donburi"
)

// EffectsData holds the effect system for the session.
type EffectsData struct {
	System *effects.System
}

var Effects = donburi.NewComponentType[EffectsData]()
