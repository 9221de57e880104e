package systems

import (
	"math"
	"testing"

	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
)

func TestAdvanceLayerWraps(t *testing.T) {
	l := components.ParallaxLayer{TileWidth: 100, Speed: 30}

	advanceLayer(&l, 1)
	if l.Offset != 30 {
		t.Errorf("offset after 1s = %v, want 30", l.Offset)
	}

	// Crossing the tile width wraps back into [0, width).
	advanceLayer(&l, 3)
	if math.Abs(l.Offset-20) > 1e-9 {
		t.Errorf("offset after wrap = %v, want 20", l.Offset)
	}

	for i := 0; i < 1000; i++ {
		advanceLayer(&l, 0.37)
		if l.Offset < 0 || l.Offset >= l.TileWidth {
			t.Fatalf("offset %v escaped [0, %v)", l.Offset, l.TileWidth)
		}
	}
}

func TestAdvanceLayerZeroWidth(t *testing.T) {
	l := components.ParallaxLayer{TileWidth: 0, Speed: 30}
	advanceLayer(&l, 1)
	if l.Offset != 0 {
		t.Errorf("zero-width layer moved to %v", l.Offset)
	}
}

func TestSkyColorsAtPhaseBoundaries(t *testing.T) {
	n := len(cfg.SkyPhases)
	phaseLen := cfg.Scenery.SkyCycle / float64(n)

	for i := 0; i < n; i++ {
		top, bottom := skyColors(float64(i) * phaseLen)
		if top != cfg.SkyPhases[i].Top {
			t.Errorf("phase %d top = %v, want %v", i, top, cfg.SkyPhases[i].Top)
		}
		if bottom != cfg.SkyPhases[i].Bottom {
			t.Errorf("phase %d bottom = %v, want %v", i, bottom, cfg.SkyPhases[i].Bottom)
		}
	}

	// A full cycle returns to the first phase.
	top, _ := skyColors(cfg.Scenery.SkyCycle)
	if top != cfg.SkyPhases[0].Top {
		t.Errorf("top after full cycle = %v, want %v", top, cfg.SkyPhases[0].Top)
	}
}

func TestSkyColorsBlendMidPhase(t *testing.T) {
	n := len(cfg.SkyPhases)
	phaseLen := cfg.Scenery.SkyCycle / float64(n)

	// Halfway between dawn and noon every channel sits between the two.
	top, _ := skyColors(phaseLen / 2)
	a, b := cfg.SkyPhases[0].Top, cfg.SkyPhases[1].Top
	between := func(v, x, y uint8) bool {
		lo, hi := x, y
		if lo > hi {
			lo, hi = hi, lo
		}
		return v >= lo && v <= hi
	}
	if !between(top.R, a.R, b.R) || !between(top.G, a.G, b.G) || !between(top.B, a.B, b.B) {
		t.Errorf("mid-phase top %v not between %v and %v", top, a, b)
	}
}

func TestSunPositionCycles(t *testing.T) {
	x0, y0 := sunPosition(0)
	x1, y1 := sunPosition(cfg.Scenery.SunCycle)
	if math.Abs(x0-x1) > 1e-6 || math.Abs(y0-y1) > 1e-6 {
		t.Errorf("sun position drifts over one cycle: (%v, %v) vs (%v, %v)", x0, y0, x1, y1)
	}
}

func TestSunPositionStaysOnArc(t *testing.T) {
	cx := float64(cfg.Window.Width) * cfg.Scenery.SunCenterX
	cy := float64(cfg.Window.Height) * cfg.Scenery.SunCenterY
	radius := float64(cfg.Window.Height) * cfg.Scenery.SunPathRadius

	for i := 0; i < 48; i++ {
		x, y := sunPosition(float64(i) * 0.5)
		d := math.Hypot(x-cx, y-cy)
		if math.Abs(d-radius) > 1e-6 {
			t.Fatalf("sun at t=%v is %v from the arc center, want %v", float64(i)*0.5, d, radius)
		}
	}
}

func TestUpdateSceneryAdvancesAllLayers(t *testing.T) {
	e := newTestECS(1, 1.0)
	scenery := e.World.Entry(e.World.Create(components.Scenery))
	components.Scenery.SetValue(scenery, components.SceneryData{
		Clouds:     components.ParallaxLayer{TileWidth: 480, Speed: cfg.Scenery.CloudSpeed},
		Mountains:  components.ParallaxLayer{TileWidth: 540, Speed: cfg.Scenery.MountainSpeed},
		Hills:      components.ParallaxLayer{TileWidth: 540, Speed: cfg.Scenery.HillSpeed},
		Foreground: components.ParallaxLayer{TileWidth: 540, Speed: cfg.Pipe.Speed},
	})

	UpdateScenery(e)

	s := components.Scenery.Get(scenery)
	if s.Time != 1 {
		t.Errorf("scenery time = %v, want 1", s.Time)
	}
	if s.Clouds.Offset != cfg.Scenery.CloudSpeed {
		t.Errorf("cloud offset = %v, want %v", s.Clouds.Offset, cfg.Scenery.CloudSpeed)
	}
	if s.Mountains.Offset != cfg.Scenery.MountainSpeed {
		t.Errorf("mountain offset = %v, want %v", s.Mountains.Offset, cfg.Scenery.MountainSpeed)
	}
	if s.Hills.Offset != cfg.Scenery.HillSpeed {
		t.Errorf("hill offset = %v, want %v", s.Hills.Offset, cfg.Scenery.HillSpeed)
	}
	// The foreground band matches the obstacle speed, wrapped into range.
	want := math.Mod(cfg.Pipe.Speed, 540)
	if math.Abs(s.Foreground.Offset-want) > 1e-9 {
		t.Errorf("foreground offset = %v, want %v", s.Foreground.Offset, want)
	}
}
