package factory

import (
	"math/rand"

	"github.com/automoto/skydrift/archetypes"
	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton round-state entity. best seeds the
// persisted high score and rng drives obstacle placement.
func CreateSession(ecs *ecs.ECS, best int, rng *rand.Rand) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Session.SetValue(session, components.SessionData{
		Current: cfg.Ready,
	})
	components.Score.SetValue(session, components.ScoreData{
		Best: best,
	})
	components.Spawner.SetValue(session, components.SpawnerData{
		Rand: rng,
	})

	return session
}
