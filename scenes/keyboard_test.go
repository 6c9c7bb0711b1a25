package scenes

import (
	"testing"

	cfg "github.com/automoto/lumina/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyByName(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
		ok   bool
	}{
		{"A", ebiten.KeyA, true},
		{"space", ebiten.KeySpace, true},
		{"ArrowLeft", ebiten.KeyArrowLeft, true},
		{"F1", ebiten.KeyF1, true},
		{"NotAKey", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := KeyByName(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("KeyByName(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDefaultBindingsResolve(t *testing.T) {
	cfg.ResetInput()
	for action, binding := range cfg.Input.Bindings {
		if len(binding.Keys) == 0 {
			t.Errorf("%v has no keys", action)
		}
		for _, name := range binding.Keys {
			if _, ok := KeyByName(name); !ok {
				t.Errorf("%v: key %q does not resolve", action, name)
			}
		}
	}
}
