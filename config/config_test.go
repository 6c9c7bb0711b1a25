package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Player.Radius != 8 {
		t.Errorf("Player.Radius = %v, want 8", Player.Radius)
	}
	if Player.JumpImpulse != -10 {
		t.Errorf("Player.JumpImpulse = %v, want -10", Player.JumpImpulse)
	}
	if Physics.Gravity != 0.4 {
		t.Errorf("Physics.Gravity = %v, want 0.4", Physics.Gravity)
	}
	if Camera.FollowSmoothing != 0.06 {
		t.Errorf("Camera.FollowSmoothing = %v, want 0.06", Camera.FollowSmoothing)
	}
	if Essence.CaptureRadius != 30 {
		t.Errorf("Essence.CaptureRadius = %v, want 30", Essence.CaptureRadius)
	}
}

func TestApplyOverridesOnlyNamedFields(t *testing.T) {
	defer Reset()
	defer ResetInput()

	doc := []byte(`
player:
  max_speed: 7
physics:
  gravity: 0.5
palette:
  essence: "#ff000080"
bindings:
  jump: [W, Space]
`)
	if err := Apply(doc); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if Player.MaxSpeed != 7 {
		t.Errorf("Player.MaxSpeed = %v, want 7", Player.MaxSpeed)
	}
	if Player.Radius != 8 {
		t.Errorf("Player.Radius = %v, want untouched 8", Player.Radius)
	}
	if Physics.Gravity != 0.5 {
		t.Errorf("Physics.Gravity = %v, want 0.5", Physics.Gravity)
	}
	if Physics.GroundDetection != 8 {
		t.Errorf("Physics.GroundDetection = %v, want untouched 8", Physics.GroundDetection)
	}
	want := color.RGBA{R: 255, A: 128}
	if Palette.Essence != want {
		t.Errorf("Palette.Essence = %v, want %v", Palette.Essence, want)
	}

	keys := Input.Bindings[ActionJump].Keys
	if len(keys) != 2 || keys[0] != "W" || keys[1] != "Space" {
		t.Errorf("jump keys = %v, want [W Space]", keys)
	}
	if len(Input.Bindings[ActionSlash].Keys) != 1 {
		t.Errorf("slash binding changed unexpectedly: %v", Input.Bindings[ActionSlash].Keys)
	}
}

func TestApplyResetsPreviousOverrides(t *testing.T) {
	defer Reset()

	if err := Apply([]byte("player:\n  max_speed: 9\n")); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := Apply([]byte("camera:\n  follow_smoothing: 0.1\n")); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if Player.MaxSpeed != 5 {
		t.Errorf("Player.MaxSpeed = %v, want default 5 after reload", Player.MaxSpeed)
	}
	if Camera.FollowSmoothing != 0.1 {
		t.Errorf("Camera.FollowSmoothing = %v, want 0.1", Camera.FollowSmoothing)
	}
}

func TestApplyErrorsKeepDefaults(t *testing.T) {
	defer Reset()
	defer ResetInput()

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown section", "gravity_well:\n  x: 1\n"},
		{"bad color", "palette:\n  magic: \"#12\"\n"},
		{"unknown palette slot", "palette:\n  fuchsia: \"#ff00ff\"\n"},
		{"unknown action", "bindings:\n  fly: [F]\n"},
		{"empty key", "bindings:\n  jump: [\"\"]\n"},
		{"wrong type", "player:\n  max_speed: fast\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Apply([]byte("player:\n  max_speed: 2\n" + tt.doc)); err == nil {
				t.Fatal("Apply succeeded, want error")
			}
			if Player.MaxSpeed != 5 {
				t.Errorf("Player.MaxSpeed = %v, want default 5", Player.MaxSpeed)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	defer Reset()

	path := filepath.Join(t.TempDir(), "lumina.yaml")
	if err := os.WriteFile(path, []byte("essence:\n  capture_radius: 45\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if Essence.CaptureRadius != 45 {
		t.Errorf("Essence.CaptureRadius = %v, want 45", Essence.CaptureRadius)
	}

	if err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile(missing) = nil, want error")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#4a7c59", color.RGBA{R: 0x4a, G: 0x7c, B: 0x59, A: 255}, true},
		{"d2691e", color.RGBA{R: 0xd2, G: 0x69, B: 0x1e, A: 255}, true},
		{"#00ff7f40", color.RGBA{R: 0x00, G: 0xff, B: 0x7f, A: 0x40}, true},
		{"#zzzzzz", color.RGBA{}, false},
		{"#fff", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseHexColor(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestActionNames(t *testing.T) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		got, ok := ActionByName(id.String())
		if !ok || got != id {
			t.Errorf("ActionByName(%q) = %v, %v; want %v", id.String(), got, ok, id)
		}
	}
	if _, ok := ActionByName("teleport"); ok {
		t.Error("ActionByName(teleport) found an action")
	}
}
