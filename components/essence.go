package components

import (
	"github.com/automoto/lumina/worlddata"
	"github.com/yohamta/donburi"
)

// EssenceData marks a collectible. Collected only ever goes from false to
// true, except when the session is reset.
type EssenceData struct {
	Kind      worlddata.Kind
	Collected bool
}

var Essence = donburi.NewComponentType[EssenceData]()
