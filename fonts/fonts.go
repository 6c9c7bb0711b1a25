package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDSmall FontName = "hud-small"
	Title    FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts    = map[FontName]font.Face{}
	mu       sync.RWMutex
	defaults sync.Once
)

// LoadDefaults registers the built-in faces. Safe to call more than once.
func LoadDefaults() {
	defaults.Do(func() {
		LoadFontWithSize(HUD, goregular.TTF, 14)
		LoadFontWithSize(HUDSmall, goregular.TTF, 11)
		LoadFontWithSize(Title, goregular.TTF, 28)
	})
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	mu.Lock()
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	mu.Unlock()
	return nil
}

func getFont(name FontName) font.Face {
	LoadDefaults()
	mu.RLock()
	f, ok := fonts[name]
	mu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
