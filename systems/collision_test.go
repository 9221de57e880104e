package systems

import (
	"testing"

	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/automoto/skydrift/systems/factory"
)

func TestOverlapsIsStrict(t *testing.T) {
	a := aabb{X: 0, Y: 0, W: 10, H: 10}

	cases := []struct {
		name string
		b    aabb
		want bool
	}{
		{"separate", aabb{X: 20, Y: 20, W: 10, H: 10}, false},
		{"overlapping", aabb{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", aabb{X: 2, Y: 2, W: 4, H: 4}, true},
		{"touching right edge", aabb{X: 10, Y: 0, W: 10, H: 10}, false},
		{"touching bottom edge", aabb{X: 0, Y: 10, W: 10, H: 10}, false},
		{"touching corner", aabb{X: 10, Y: 10, W: 10, H: 10}, false},
		{"one px overlap", aabb{X: 9, Y: 9, W: 10, H: 10}, true},
	}

	for _, tc := range cases {
		if got := overlaps(a, tc.b); got != tc.want {
			t.Errorf("%s: overlaps = %v, want %v", tc.name, got, tc.want)
		}
		// Intersection is symmetric.
		if got := overlaps(tc.b, a); got != tc.want {
			t.Errorf("%s (flipped): overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestGroundEndsRoundOnlyWhilePlaying(t *testing.T) {
	groundY := float64(cfg.Window.Height-cfg.Window.GroundHeight) - cfg.Bird.GroundClearance

	for _, tc := range []struct {
		state cfg.GameStateID
		want  cfg.GameStateID
	}{
		{cfg.Playing, cfg.GameOver},
		{cfg.Ready, cfg.Ready},
		{cfg.GameOver, cfg.GameOver},
	} {
		e := newTestECS(1, 1.0/60.0)
		setState(e, tc.state)
		bird := spawnTestBird(e)
		obj := components.Object.Get(bird).Object
		obj.Y = float64(cfg.Window.Height) // well below the ground
		obj.Update()

		UpdateCollisions(e)

		session := getOrCreateSession(e)
		if session.Current != tc.want {
			t.Errorf("state %v: after ground contact got %v, want %v", tc.state, session.Current, tc.want)
		}
		if center := obj.Y + obj.H/2; center != groundY {
			t.Errorf("state %v: center y = %v, want clamped to %v", tc.state, center, groundY)
		}
	}
}

func TestCeilingClampsWithoutEndingRound(t *testing.T) {
	e := newTestECS(1, 1.0/60.0)
	setState(e, cfg.Playing)
	bird := spawnTestBird(e)
	b := components.Bird.Get(bird)
	obj := components.Object.Get(bird).Object

	b.Velocity = -cfg.Bird.FlapImpulse
	obj.Y = cfg.Bird.CeilingY - 200
	obj.Update()

	UpdateCollisions(e)

	if session := getOrCreateSession(e); session.Current != cfg.Playing {
		t.Errorf("ceiling contact moved state to %v, want still playing", session.Current)
	}
	if center := obj.Y + obj.H/2; center != cfg.Bird.CeilingY {
		t.Errorf("center y = %v, want clamped to %v", center, cfg.Bird.CeilingY)
	}
	if b.Velocity != 0 {
		t.Errorf("velocity = %v, want zeroed at the ceiling", b.Velocity)
	}
}

func TestPipeContactEndsRound(t *testing.T) {
	e := newTestECS(1, 1.0/60.0)
	setState(e, cfg.Playing)
	bird := spawnTestBird(e)
	obj := components.Object.Get(bird).Object

	// Gap centered far from the bird so the top pipe covers its position.
	factory.CreatePipe(e, getSpace(e), obj.X, 700, cfg.Pipe.GapMin)

	UpdateCollisions(e)

	if session := getOrCreateSession(e); session.Current != cfg.GameOver {
		t.Errorf("state after pipe contact = %v, want game over", session.Current)
	}
	if session := getOrCreateSession(e); session.FlashAlpha != cfg.Flash.MaxAlpha {
		t.Errorf("flash alpha = %v, want %v at round end", session.FlashAlpha, cfg.Flash.MaxAlpha)
	}
}

func TestBirdThroughGapDoesNotCollide(t *testing.T) {
	e := newTestECS(1, 1.0/60.0)
	setState(e, cfg.Playing)
	bird := spawnTestBird(e)
	obj := components.Object.Get(bird).Object

	// Gap centered exactly on the bird, wide enough to clear both hitboxes.
	centerY := obj.Y + obj.H/2
	factory.CreatePipe(e, getSpace(e), obj.X, centerY, cfg.Pipe.GapBase)

	UpdateCollisions(e)

	if session := getOrCreateSession(e); session.Current != cfg.Playing {
		t.Errorf("flying through the gap ended the round (state %v)", session.Current)
	}
}

func TestHitboxInsetForgivesNearMisses(t *testing.T) {
	e := newTestECS(1, 1.0/60.0)
	setState(e, cfg.Playing)
	bird := spawnTestBird(e)
	obj := components.Object.Get(bird).Object

	// Pipe overlapping only the bounding box's left fringe, inside the
	// horizontal inset. Broad phase sees it, narrow phase must not.
	pipeRight := obj.X + cfg.Bird.HitboxInsetX/2
	factory.CreatePipe(e, getSpace(e), pipeRight-cfg.Pipe.Width, 700, cfg.Pipe.GapMin)

	UpdateCollisions(e)

	if session := getOrCreateSession(e); session.Current != cfg.Playing {
		t.Errorf("fringe contact ended the round (state %v)", session.Current)
	}
}
