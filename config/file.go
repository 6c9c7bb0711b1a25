package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HexColor decodes "#rrggbb" or "#rrggbbaa" scalars.
type HexColor struct {
	color.RGBA
}

func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	rgba, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = rgba
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		return uint8(v), err
	}

	var out color.RGBA
	var err error
	if out.R, err = parse(0); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %s: %w", s, err)
	}
	if out.G, err = parse(2); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %s: %w", s, err)
	}
	if out.B, err = parse(4); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %s: %w", s, err)
	}
	out.A = 255
	if len(hex) == 8 {
		if out.A, err = parse(6); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %s: %w", s, err)
		}
	}
	return out, nil
}

// LoadFile resets every tunable to its default and then applies the
// overrides found in the YAML file at path.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("apply config %s: %w", path, err)
	}
	return nil
}

// Apply resets to defaults and decodes YAML overrides on top. Only the
// fields present in the document change. On error the defaults stay in place.
func Apply(data []byte) error {
	var sections map[string]yaml.Node
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	Reset()
	ResetInput()
	if err := applySections(sections); err != nil {
		Reset()
		ResetInput()
		return err
	}
	return nil
}

func applySections(sections map[string]yaml.Node) error {
	targets := map[string]any{
		"screen":  C,
		"player":  &Player,
		"physics": &Physics,
		"camera":  &Camera,
		"essence": &Essence,
		"effects": &Effects,
		"world":   &World,
		"minimap": &Minimap,
	}

	for name, node := range sections {
		switch name {
		case "palette":
			if err := applyPalette(&node); err != nil {
				return err
			}
		case "bindings":
			if err := applyBindings(&node); err != nil {
				return err
			}
		default:
			target, ok := targets[name]
			if !ok {
				return fmt.Errorf("unknown section %q", name)
			}
			if err := node.Decode(target); err != nil {
				return fmt.Errorf("section %s: %w", name, err)
			}
		}
	}
	return nil
}

func applyPalette(node *yaml.Node) error {
	var colors map[string]HexColor
	if err := node.Decode(&colors); err != nil {
		return fmt.Errorf("section palette: %w", err)
	}

	slots := map[string]*color.RGBA{
		"background_far":  &Palette.BackgroundFar,
		"background_mid":  &Palette.BackgroundMid,
		"background_near": &Palette.BackgroundNear,
		"platform_dark":   &Palette.PlatformDark,
		"platform_mid":    &Palette.PlatformMid,
		"platform_light":  &Palette.PlatformLight,
		"player":          &Palette.Player,
		"player_glow":     &Palette.PlayerGlow,
		"magic":           &Palette.Magic,
		"warmth":          &Palette.Warmth,
		"essence":         &Palette.Essence,
		"life":            &Palette.Life,
	}
	for name, c := range colors {
		slot, ok := slots[name]
		if !ok {
			return fmt.Errorf("unknown palette color %q", name)
		}
		*slot = c.RGBA
	}
	return nil
}

func applyBindings(node *yaml.Node) error {
	var bindings map[string][]string
	if err := node.Decode(&bindings); err != nil {
		return fmt.Errorf("section bindings: %w", err)
	}

	for actionName, keyNames := range bindings {
		action, ok := ActionByName(actionName)
		if !ok {
			return fmt.Errorf("unknown action %q", actionName)
		}
		keys := make([]string, 0, len(keyNames))
		for _, keyName := range keyNames {
			keyName = strings.TrimSpace(keyName)
			if keyName == "" {
				return fmt.Errorf("action %s: empty key name", actionName)
			}
			keys = append(keys, keyName)
		}
		Input.Bindings[action] = InputBinding{Keys: keys}
	}
	return nil
}
