package scenes

import (
	"log"
	"strings"

	cfg "github.com/automoto/lumina/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyboardSource reads the bound keys from ebiten.
type KeyboardSource struct{}

func (KeyboardSource) Pressed(action cfg.ActionID) bool {
	binding, ok := cfg.Input.Bindings[action]
	if !ok {
		return false
	}
	for _, name := range binding.Keys {
		key, ok := lookupKey(name)
		if ok && ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// Names that failed to resolve, so each one is reported once.
var unknownKeys = map[string]bool{}

func lookupKey(name string) (ebiten.Key, bool) {
	key, ok := KeyByName(name)
	if !ok && !unknownKeys[name] {
		unknownKeys[name] = true
		log.Printf("Warning: Unknown key %q in bindings", name)
	}
	return key, ok
}

// KeyByName resolves an ebiten key from its String() form, case-insensitively.
func KeyByName(name string) (ebiten.Key, bool) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}
