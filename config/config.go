package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Radius       float64 `yaml:"radius"`
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	Friction     float64 `yaml:"friction"` // Multiplier applied to horizontal speed every frame

	// Jump buffering
	JumpBufferFrames int `yaml:"jump_buffer_frames"`

	// Abilities
	LightRadius   float64 `yaml:"light_radius"` // Platforms inside this radius are lit
	PulseGlow     float64 `yaml:"pulse_glow"`
	SlashGlow     float64 `yaml:"slash_glow"`
	SlashCooldown int     `yaml:"slash_cooldown"` // frames
	CollectGlow   float64 `yaml:"collect_glow"`

	// Trail emission
	TrailSpeedThreshold float64 `yaml:"trail_speed_threshold"` // |vx| above which trail particles spawn
	TrailChance         float64 `yaml:"trail_chance"`          // Probability per frame

	// Fall-through recovery
	FallMargin float64 `yaml:"fall_margin"` // Pixels below the world before respawn
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	GroundDetection float64 `yaml:"ground_detection"` // Tolerance band below a platform's bottom edge
	CollisionBuffer float64 `yaml:"collision_buffer"`

	// Spatial hash cell size for the collision space
	CellSize int `yaml:"cell_size"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // Fraction of remaining distance closed per frame (0.0-1.0)
}

// EssenceConfig contains collectible configuration
type EssenceConfig struct {
	CaptureRadius float64        `yaml:"capture_radius"`
	Scores        map[string]int `yaml:"scores"` // keyed by essence kind name
	BobAmplitude  float64        `yaml:"bob_amplitude"`
	BobSpeed      float64        `yaml:"bob_speed"`
}

// EffectsConfig contains particle and pulse tunables
type EffectsConfig struct {
	ParticleDamping float64 `yaml:"particle_damping"`

	PulseMaxRadius float64 `yaml:"pulse_max_radius"`
	PulseLife      int     `yaml:"pulse_life"`
	PulseParticles int     `yaml:"pulse_particles"`

	SlashLife        int     `yaml:"slash_life"`
	SlashPoints      int     `yaml:"slash_points"`
	SlashRadius      float64 `yaml:"slash_radius"`
	SlashRevealEvery int     `yaml:"slash_reveal_every"` // frames between revealed trail points
	SlashPointAge    int     `yaml:"slash_point_age"`    // frames a revealed point stays visible
	SlashReach       float64 `yaml:"slash_reach"`
}

// WorldConfig contains world generation defaults
type WorldConfig struct {
	DefaultName         string  `yaml:"default_name"` // Embedded Tiled world; empty selects the hand-authored layout
	MapScale            float64 `yaml:"map_scale"`    // World units per bitmap pixel
	FetchTimeoutSeconds int     `yaml:"fetch_timeout_seconds"`
}

// MinimapConfig contains overview map configuration
type MinimapConfig struct {
	Width         int        `yaml:"width"`
	Margin        float64    `yaml:"margin"`
	RefreshFrames int        `yaml:"refresh_frames"`
	FadeSeconds   float32    `yaml:"fade_seconds"`
	Background    color.RGBA `yaml:"-"`
}

// PaletteConfig holds the game's colors
type PaletteConfig struct {
	BackgroundFar  color.RGBA
	BackgroundMid  color.RGBA
	BackgroundNear color.RGBA

	PlatformDark  color.RGBA
	PlatformMid   color.RGBA
	PlatformLight color.RGBA

	Player     color.RGBA
	PlayerGlow color.RGBA

	Magic   color.RGBA
	Warmth  color.RGBA
	Essence color.RGBA
	Life    color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	ButtonIdle   color.RGBA
	ButtonHover  color.RGBA
	ButtonPress  color.RGBA
	MenuOptions  []string
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Essence EssenceConfig
var Effects EffectsConfig
var World WorldConfig
var Minimap MinimapConfig
var Palette PaletteConfig
var Pause PauseConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Start with the collision overlay visible
	Seed    uint64
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every tunable to its built-in default. Debug options are
// command-line state and are left alone.
func Reset() {
	C = &Config{
		Width:  1200,
		Height: 700,
		Title:  "Lumina",
	}

	Player = PlayerConfig{
		Radius:       8,
		Acceleration: 0.5,
		MaxSpeed:     5,
		JumpImpulse:  -10,
		Friction:     0.88,

		JumpBufferFrames: 10,

		LightRadius:   100,
		PulseGlow:     15,
		SlashGlow:     15,
		SlashCooldown: 25,
		CollectGlow:   10,

		TrailSpeedThreshold: 0.5,
		TrailChance:         0.3,

		FallMargin: 200,
	}

	Physics = PhysicsConfig{
		Gravity:         0.4,
		GroundDetection: 8,
		CollisionBuffer: 5,
		CellSize:        16,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.06,
	}

	Essence = EssenceConfig{
		CaptureRadius: 30,
		Scores: map[string]int{
			"small":   1,
			"large":   3,
			"crystal": 5,
		},
		BobAmplitude: 2,
		BobSpeed:     0.08,
	}

	Effects = EffectsConfig{
		ParticleDamping: 0.95,

		PulseMaxRadius: 60,
		PulseLife:      20,
		PulseParticles: 12,

		SlashLife:        15,
		SlashPoints:      6,
		SlashRadius:      40,
		SlashRevealEvery: 2,
		SlashPointAge:    8,
		SlashReach:       35,
	}

	World = WorldConfig{
		DefaultName:         "",
		MapScale:            10,
		FetchTimeoutSeconds: 10,
	}

	Minimap = MinimapConfig{
		Width:         200,
		Margin:        10,
		RefreshFrames: 3,
		FadeSeconds:   0.25,
		Background:    color.RGBA{R: 0, G: 0, B: 0, A: 230},
	}

	Palette = PaletteConfig{
		BackgroundFar:  color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 255},
		BackgroundMid:  color.RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 255},
		BackgroundNear: color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 255},

		PlatformDark:  color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 255},
		PlatformMid:   color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 255},
		PlatformLight: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 255},

		Player:     color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 255},
		PlayerGlow: color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 255},

		Magic:   color.RGBA{R: 0x4a, G: 0x7c, B: 0x59, A: 255},
		Warmth:  color.RGBA{R: 0xd2, G: 0x69, B: 0x1e, A: 255},
		Essence: color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 255},
		Life:    color.RGBA{R: 0x00, G: 0xff, B: 0x7f, A: 255},
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		ButtonIdle:   color.RGBA{R: 30, G: 30, B: 30, A: 230},
		ButtonHover:  color.RGBA{R: 0x4a, G: 0x7c, B: 0x59, A: 240},
		ButtonPress:  color.RGBA{R: 0x2a, G: 0x4c, B: 0x39, A: 255},
		MenuOptions:  []string{"Resume", "Restart", "Quit"},
	}
}
