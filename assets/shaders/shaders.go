package shaders

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.kage
var shaderFS embed.FS

var (
	// Glow draws a soft radial halo. Nil until Load succeeds; renderers
	// fall back to stacked circles.
	Glow *ebiten.Shader
)

// Load compiles and caches all shaders
func Load() error {
	glowSrc, err := shaderFS.ReadFile("glow.kage")
	if err != nil {
		return err
	}
	Glow, err = ebiten.NewShader(glowSrc)
	if err != nil {
		return err
	}
	return nil
}
