package components

import (
	"github.com/yohamta/donburi"
)

// BirdData holds the bird's continuous simulation state. The bird's
// position lives on its resolv object; everything here feeds either the
// integrator or the renderer.
type BirdData struct {
	Velocity      float64 // vertical, px/s, positive downward
	Rotation      float64 // degrees, positive tilts the nose up
	TimeSinceFlap float64 // seconds, animation only
	AnimPhase     float64 // wing-flap cadence
	IdleOffset    float64 // phase of the idle bob sine
}

var Bird = donburi.NewComponentType[BirdData]()
