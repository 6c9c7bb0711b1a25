package systems

import (
	"image/color"

	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/gamemath"
	"github.com/automoto/lumina/tags"
	"github.com/automoto/lumina/worlddata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// EssenceCollectedEvent is published once per essence, on the frame it is
// picked up.
type EssenceCollectedEvent struct {
	X, Y float64
	Kind worlddata.Kind
}

var EssenceCollected = events.NewEventType[EssenceCollectedEvent]()

// UpdateEssences collects every essence within the capture radius of the
// player and delivers the events before returning.
func UpdateEssences(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	pos := components.Position.Get(playerEntry)

	for _, ev := range CheckCollection(ecs, pos.X, pos.Y) {
		EssenceCollected.Publish(ecs.World, ev)
	}
	EssenceCollected.ProcessEvents(ecs.World)
}

// CheckCollection marks every uncollected essence within the capture radius
// of (x, y) as collected and returns them. Essences already collected are
// never returned again.
func CheckCollection(ecs *ecs.ECS, x, y float64) []EssenceCollectedEvent {
	var collected []EssenceCollectedEvent
	tags.Essence.Each(ecs.World, func(e *donburi.Entry) {
		essence := components.Essence.Get(e)
		if essence.Collected {
			return
		}
		pos := components.Position.Get(e)
		if gamemath.Dist(x, y, pos.X, pos.Y) >= cfg.Essence.CaptureRadius {
			return
		}
		essence.Collected = true
		collected = append(collected, EssenceCollectedEvent{X: pos.X, Y: pos.Y, Kind: essence.Kind})
	})
	return collected
}

// OnEssenceCollected updates the score, lights up the player and bursts
// the collect effect. It is subscribed to EssenceCollected.
func OnEssenceCollected(w donburi.World, ev EssenceCollectedEvent) {
	if entry, ok := components.Session.First(w); ok {
		session := components.Session.Get(entry)
		session.EssenceCount++
		session.Score += EssenceScore(ev.Kind)
		if session.EssenceCount > session.BestEssences || session.Score > session.BestScore {
			session.BestEssences = max(session.BestEssences, session.EssenceCount)
			session.BestScore = max(session.BestScore, session.Score)
			SaveBestRun(BestRun{Essences: session.BestEssences, Score: session.BestScore})
		}
	}

	if entry, ok := tags.Player.First(w); ok {
		player := components.Player.Get(entry)
		player.Glow = max(player.Glow, cfg.Player.CollectGlow)
	}

	if entry, ok := components.Effects.First(w); ok {
		components.Effects.Get(entry).System.AddEssenceCollectEffect(ev.X, ev.Y, ev.Kind)
	}
}

// EssenceScore is the configured weight of a kind, 1 if unset.
func EssenceScore(kind worlddata.Kind) int {
	if score, ok := cfg.Essence.Scores[kind.String()]; ok {
		return score
	}
	return 1
}

// EssenceColor is the tint of an essence kind.
func EssenceColor(kind worlddata.Kind) color.RGBA {
	switch kind {
	case worlddata.Large:
		return cfg.Palette.Essence
	case worlddata.Crystal:
		return cfg.Palette.Life
	default:
		return cfg.Palette.Magic
	}
}

// EssenceSize is the drawn radius of an essence kind.
func EssenceSize(kind worlddata.Kind) float64 {
	switch kind {
	case worlddata.Large:
		return 7
	case worlddata.Crystal:
		return 9
	default:
		return 5
	}
}
