package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/automoto/skydrift/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession drives the Ready/Playing/GameOver machine from flap and
// quit inputs and advances the flash fade. Collision outcomes enter the
// machine through EndRound.
func UpdateSession(ecs *ecs.ECS) {
	dt := DT(ecs)
	input := getOrCreateInput(ecs)
	session := getOrCreateSession(ecs)

	if GetAction(input, cfg.ActionQuit).JustPressed {
		session.Quit = true
	}

	if session.Flash != nil {
		alpha, done := session.Flash.Update(float32(dt))
		session.FlashAlpha = alpha
		if done {
			session.Flash = nil
			session.FlashAlpha = 0
		}
	}

	if GetAction(input, cfg.ActionFlap).JustPressed {
		switch session.Current {
		case cfg.Ready:
			session.Current = cfg.Playing
			flapBird(ecs)
		case cfg.Playing:
			flapBird(ecs)
		case cfg.GameOver:
			ResetRound(ecs)
		}
	}
}

// EndRound transitions Playing to GameOver and starts the linear white
// flash. Safe to call more than once per frame; only the first ends the
// round.
func EndRound(ecs *ecs.ECS) {
	session := getOrCreateSession(ecs)
	if session.Current == cfg.GameOver {
		return
	}
	session.Current = cfg.GameOver
	session.FlashAlpha = cfg.Flash.MaxAlpha
	session.Flash = gween.New(cfg.Flash.MaxAlpha, 0, cfg.Flash.Duration, ease.Linear)
}

// ResetRound performs the full GameOver -> Ready reset: fresh bird,
// no pipes, zero score, zeroed timers and flash.
func ResetRound(ecs *ecs.ECS) {
	entry := sessionEntry(ecs)
	session := components.Session.Get(entry)
	score := components.Score.Get(entry)
	spawner := components.Spawner.Get(entry)
	space := getSpace(ecs)

	session.Current = cfg.Ready
	session.Flash = nil
	session.FlashAlpha = 0
	score.Current = 0
	spawner.Timer = 0

	var pipes []*donburi.Entry
	tags.Pipe.Each(ecs.World, func(e *donburi.Entry) {
		pipes = append(pipes, e)
	})
	for _, e := range pipes {
		p := components.Pipe.Get(e)
		if space != nil {
			space.Remove(p.Top, p.Bottom)
		}
		e.Remove()
	}

	tags.Bird.Each(ecs.World, func(e *donburi.Entry) {
		ResetBird(components.Bird.Get(e), components.Object.Get(e).Object)
	})
}

func flapBird(ecs *ecs.ECS) {
	tags.Bird.Each(ecs.World, func(e *donburi.Entry) {
		Flap(components.Bird.Get(e))
	})
}

func sessionEntry(ecs *ecs.ECS) *donburi.Entry {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(
			components.Session, components.Score, components.Spawner,
		))
		components.Spawner.SetValue(entry, components.SpawnerData{
			Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		})
	}
	return entry
}

func getOrCreateSession(ecs *ecs.ECS) *components.SessionData {
	return components.Session.Get(sessionEntry(ecs))
}
