package archetypes

import (
	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/automoto/skydrift/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Bird = newArchetype(
		tags.Bird,
		components.Bird,
		components.Object,
		components.Sprite,
	)
	Pipe = newArchetype(
		tags.Pipe,
		components.Pipe,
	)
	Space = newArchetype(
		components.Space,
	)
	Scenery = newArchetype(
		components.Scenery,
	)
	// Session carries the state machine, score and spawn timer together:
	// there is exactly one of each per round.
	Session = newArchetype(
		components.Session,
		components.Score,
		components.Spawner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
