package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. Quit is set by the pause menu and read
// by the host loop.
type PauseData struct {
	IsPaused bool
	Quit     bool
}

var Pause = donburi.NewComponentType[PauseData]()
