package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Essence  = donburi.NewTag().SetName("Essence")
)

// Resolv tags for physics collision
const (
	ResolvPlatform = "platform"
	ResolvFeet     = "feet"
)
