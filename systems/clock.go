package systems

import (
	"time"

	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock measures the wall time elapsed since the previous frame.
// Must run before every other system so they all see the same dt.
// Ebiten's tick limiter bounds the cadence from below; MaxFrameDelta
// bounds the step from above after a stall.
func UpdateClock(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs)
	now := time.Now()

	if clock.Last.IsZero() {
		clock.DT = 1.0 / float64(cfg.Window.TPS)
	} else {
		clock.DT = clampFrameDelta(now.Sub(clock.Last).Seconds(), cfg.Window.MaxFrameDelta)
	}
	clock.Last = now
}

func clampFrameDelta(dt, max float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}

// DT returns the current frame's time step in seconds.
func DT(ecs *ecs.ECS) float64 {
	return getOrCreateClock(ecs).DT
}

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
