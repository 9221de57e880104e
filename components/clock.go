package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData measures the wall time elapsed between frames. DT is the
// clamped per-frame step every system integrates with.
type ClockData struct {
	Last time.Time
	DT   float64
}

var Clock = donburi.NewComponentType[ClockData]()
