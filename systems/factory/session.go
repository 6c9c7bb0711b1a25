package factory

import (
	"github.com/automoto/lumina/archetypes"
	"github.com/automoto/lumina/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSession(ecs *ecs.ECS, settings components.SettingsData) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{})
	components.Settings.SetValue(session, settings)
	return session
}
