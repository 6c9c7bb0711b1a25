package main

import (
	"sync"
	"time"

	cfg "github.com/automoto/lumina/config"
	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses (and auto-repeats) but never releases, so
// an action counts as held until keyTimeout passes without a repeat.
const keyTimeout = 150 * time.Millisecond

// KeyInput turns tcell key events into held actions.
type KeyInput struct {
	mu      sync.Mutex
	pressed map[cfg.ActionID]time.Time
	now     func() time.Time
}

func NewKeyInput() *KeyInput {
	return &KeyInput{
		pressed: make(map[cfg.ActionID]time.Time),
		now:     time.Now,
	}
}

// ActionForKey maps a terminal key to a game action.
func ActionForKey(ev *tcell.EventKey) cfg.ActionID {
	switch ev.Key() {
	case tcell.KeyLeft:
		return cfg.ActionMoveLeft
	case tcell.KeyRight:
		return cfg.ActionMoveRight
	case tcell.KeyUp:
		return cfg.ActionJump
	case tcell.KeyF1:
		return cfg.ActionToggleDebug
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return cfg.ActionMoveLeft
		case 'd', 'D':
			return cfg.ActionMoveRight
		case ' ', 'w', 'W':
			return cfg.ActionJump
		case 'q', 'Q':
			return cfg.ActionLightPulse
		case 'e', 'E':
			return cfg.ActionSlash
		case 'p', 'P':
			return cfg.ActionPause
		case 'r', 'R':
			return cfg.ActionReset
		case 'm', 'M':
			return cfg.ActionToggleMinimap
		}
	}
	return cfg.ActionNone
}

// HandleKey records a key event. It returns false for keys that end the
// program.
func (k *KeyInput) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	action := ActionForKey(ev)
	if action == cfg.ActionNone {
		return true
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	// Moving one way cancels the other so direction changes are immediate.
	switch action {
	case cfg.ActionMoveLeft:
		delete(k.pressed, cfg.ActionMoveRight)
	case cfg.ActionMoveRight:
		delete(k.pressed, cfg.ActionMoveLeft)
	}
	k.pressed[action] = k.now()
	return true
}

func (k *KeyInput) Pressed(action cfg.ActionID) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	last, ok := k.pressed[action]
	if !ok {
		return false
	}
	if k.now().Sub(last) >= keyTimeout {
		delete(k.pressed, action)
		return false
	}
	return true
}
