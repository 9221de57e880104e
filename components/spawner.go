package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// SpawnerData drives the pipe spawn cadence. Timer accumulates dt and
// carries the remainder past each spawn so cadence is independent of
// frame-rate variance. Rand places the gap center; tests pass a seeded
// source.
type SpawnerData struct {
	Timer float64
	Rand  *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()
