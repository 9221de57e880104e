package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/automoto/skydrift/systems/factory"
	"github.com/automoto/skydrift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePipes owns the obstacle lifecycle: spawning on a fixed cadence
// while Playing, advancing every pipe leftward in all states, flipping
// the passed flag for scoring, and retiring pipes that left the field.
func UpdatePipes(ecs *ecs.ECS) {
	dt := DT(ecs)
	entry := sessionEntry(ecs)
	session := components.Session.Get(entry)
	score := components.Score.Get(entry)
	spawner := components.Spawner.Get(entry)
	space := getSpace(ecs)

	if session.Current == cfg.Playing {
		spawner.Timer += dt
		// Subtract the interval instead of resetting so the remainder
		// carries over and cadence stays exact across frames.
		for spawner.Timer >= cfg.Pipe.SpawnInterval {
			spawner.Timer -= cfg.Pipe.SpawnInterval
			gap := GapSize(score.Current)
			factory.CreatePipe(ecs, space,
				float64(cfg.Window.Width)+cfg.Pipe.SpawnOffset,
				rollGapCenter(spawner.Rand, gap),
				gap,
			)
		}
	}

	var retired []*donburi.Entry
	tags.Pipe.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Pipe.Get(e)
		p.X -= cfg.Pipe.Speed * dt
		syncPipeObjects(p)

		if session.Current == cfg.Playing && !p.Passed && p.X+cfg.Pipe.Width < cfg.Bird.X {
			p.Passed = true
			score.Current++
			if score.Current > score.Best {
				score.Best = score.Current
				syncBestScore(score.Best)
			}
		}

		if p.X+cfg.Pipe.Width < cfg.Pipe.RetireThreshold {
			retired = append(retired, e)
		}
	})

	// Remove after the pass; never mutate the collection mid-iteration.
	for _, e := range retired {
		p := components.Pipe.Get(e)
		if space != nil {
			space.Remove(p.Top, p.Bottom)
		}
		e.Remove()
	}
}

// GapSize computes the adaptive gap for the current score: it shrinks
// linearly from GapBase to GapMin as score approaches the difficulty cap
// and stays at GapMin beyond it.
func GapSize(score int) float64 {
	progress := math.Min(1, float64(score)/float64(cfg.Pipe.DifficultyScoreCap))
	return cfg.Pipe.GapBase - (cfg.Pipe.GapBase-cfg.Pipe.GapMin)*progress
}

// rollGapCenter places the gap center uniformly so both openings keep at
// least the placement margin inside the playfield above the ground band.
func rollGapCenter(rng *rand.Rand, gap float64) float64 {
	lo := cfg.Pipe.PlacementMargin + gap/2
	hi := float64(cfg.Window.Height-cfg.Window.GroundHeight) - cfg.Pipe.PlacementMargin - gap/2
	return lo + rng.Float64()*(hi-lo)
}

// pipeRects derives the two obstruction rectangles from the pipe's
// current x and its cached gap parameters.
func pipeRects(x, gapY, gap float64) (top, bottom aabb) {
	groundLine := float64(cfg.Window.Height - cfg.Window.GroundHeight)
	top = aabb{X: x, Y: 0, W: cfg.Pipe.Width, H: gapY - gap/2}
	bottomTop := gapY + gap/2
	bottom = aabb{X: x, Y: bottomTop, W: cfg.Pipe.Width, H: groundLine - bottomTop}
	return top, bottom
}

func syncPipeObjects(p *components.PipeData) {
	top, bottom := pipeRects(p.X, p.GapY, p.GapSize)
	if p.Top != nil {
		p.Top.X, p.Top.Y, p.Top.W, p.Top.H = top.X, top.Y, top.W, top.H
		p.Top.Update()
	}
	if p.Bottom != nil {
		p.Bottom.X, p.Bottom.Y, p.Bottom.W, p.Bottom.H = bottom.X, bottom.Y, bottom.W, bottom.H
		p.Bottom.Update()
	}
}

// DrawPipes renders each obstruction as a light body with dark end caps
// and a vertical highlight stripe.
func DrawPipes(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Pipe.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Pipe.Get(e)
		top, bottom := pipeRects(p.X, p.GapY, p.GapSize)
		drawPipeRect(screen, top)
		drawPipeRect(screen, bottom)
	})
}

func drawPipeRect(screen *ebiten.Image, r aabb) {
	if r.H <= 0 {
		return
	}
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)
	cap := float32(cfg.Pipe.CapHeight)

	vector.DrawFilledRect(screen, x, y, w, h, cfg.Pipe.BodyColor, false)
	vector.DrawFilledRect(screen, x, y, w, cap, cfg.Pipe.ShadeColor, false)
	vector.DrawFilledRect(screen, x, y+h-cap, w, cap, cfg.Pipe.ShadeColor, false)
	vector.DrawFilledRect(screen, x+float32(cfg.Pipe.StripeX), y, float32(cfg.Pipe.StripeWidth), h, cfg.Pipe.ShadeColor, false)
}
