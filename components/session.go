package components

import "github.com/yohamta/donburi"

// SessionData holds per-run counters and the persisted best run.
type SessionData struct {
	Frame        int
	EssenceCount int
	Score        int

	BestEssences int
	BestScore    int
}

var Session = donburi.NewComponentType[SessionData]()

// SettingsData holds view toggles. Minimap is persisted between runs.
type SettingsData struct {
	Minimap bool
	Debug   bool
}

var Settings = donburi.NewComponentType[SettingsData]()
