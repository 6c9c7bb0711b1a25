package systems

import (
	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession counts gameplay frames.
func UpdateSession(ecs *ecs.ECS) {
	if session := GetSession(ecs); session != nil {
		session.Frame++
	}
}

// GetSession returns the run counters, or nil if no session exists.
func GetSession(ecs *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// GetOrCreateSettings returns the view toggles, creating them if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
	}
	return components.Settings.Get(entry)
}

// UpdateSettings toggles the minimap (M) and the debug overlay (F1). The
// minimap choice is saved.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if GetAction(input, cfg.ActionToggleMinimap).JustPressed {
		settings.Minimap = !settings.Minimap
		_ = SaveSettings(&SavedSettings{Minimap: settings.Minimap})
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}
