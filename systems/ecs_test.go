package systems

import (
	"math/rand"

	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/automoto/skydrift/systems/factory"
	"github.com/automoto/skydrift/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a world with a space, a deterministic session and a
// pinned frame delta. No images are created, so tests run headless.
func newTestECS(seed int64, dt float64) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	getOrCreateClock(e).DT = dt
	factory.CreateSpace(e,
		cfg.Window.Width+int(cfg.Pipe.Width+cfg.Pipe.SpawnOffset),
		cfg.Window.Height,
		16, 16,
	)
	factory.CreateSession(e, 0, rand.New(rand.NewSource(seed)))
	return e
}

// spawnTestBird creates a bird entity without sprite images.
func spawnTestBird(e *ecs.ECS) *donburi.Entry {
	bird := e.World.Entry(e.World.Create(
		tags.Bird, components.Bird, components.Object, components.Sprite,
	))
	obj := resolv.NewObject(
		cfg.Bird.X-cfg.Bird.BoxWidth/2,
		float64(cfg.Window.Height)/2-cfg.Bird.BoxHeight/2,
		cfg.Bird.BoxWidth,
		cfg.Bird.BoxHeight,
	)
	obj.AddTags(tags.ResolvBird)
	obj.Data = bird
	components.Object.SetValue(bird, components.ObjectData{Object: obj})
	if space := getSpace(e); space != nil {
		space.Add(obj)
	}
	return bird
}

func setState(e *ecs.ECS, state cfg.GameStateID) {
	getOrCreateSession(e).Current = state
}

// pressAction simulates an edge-triggered press for the next frame.
func pressAction(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous[id] = false
	input.Current[id] = true
}

// releaseActions clears all inputs, moving current into previous.
func releaseActions(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

func countPipes(e *ecs.ECS) int {
	n := 0
	tags.Pipe.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
