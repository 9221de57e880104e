package systems

import (
	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/automoto/skydrift/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type aabb struct {
	X, Y, W, H float64
}

// overlaps is a strict AABB intersection: rectangles that only share an
// edge do not collide.
func overlaps(a, b aabb) bool {
	return a.X+a.W > b.X && a.X < b.X+b.W &&
		a.Y+a.H > b.Y && a.Y < b.Y+b.H
}

// UpdateCollisions evaluates the bird against pipes and world bounds.
// Pipe or ground contact ends the round; the ceiling only clamps.
// Must run after UpdateBird and UpdatePipes.
func UpdateCollisions(ecs *ecs.ECS) {
	session := getOrCreateSession(ecs)

	tags.Bird.Each(ecs.World, func(e *donburi.Entry) {
		bird := components.Bird.Get(e)
		obj := components.Object.Get(e)

		if session.Current == cfg.Playing && birdHitsPipe(obj.Object) {
			EndRound(ecs)
		}

		// Ground: clamp in every state, end the round only while Playing.
		groundY := float64(cfg.Window.Height-cfg.Window.GroundHeight) - cfg.Bird.GroundClearance
		centerY := obj.Y + obj.H/2
		if centerY > groundY {
			obj.Y = groundY - obj.H/2
			obj.Update()
			if session.Current == cfg.Playing {
				EndRound(ecs)
			}
		}

		// Soft ceiling: clamp and kill upward velocity, never a game over.
		if centerY < cfg.Bird.CeilingY {
			obj.Y = cfg.Bird.CeilingY - obj.H/2
			obj.Update()
			bird.Velocity = 0
		}
	})
}

// birdHitsPipe runs the resolv broad phase over the bird's bounding box,
// then tests both bird rectangles against each candidate obstruction.
func birdHitsPipe(obj *resolv.Object) bool {
	check := obj.Check(0, 0, tags.ResolvPipe)
	if check == nil {
		return false
	}

	rects := birdRects(obj)
	for _, pipeObj := range check.ObjectsByTags(tags.ResolvPipe) {
		pr := aabb{X: pipeObj.X, Y: pipeObj.Y, W: pipeObj.W, H: pipeObj.H}
		if pr.W <= 0 || pr.H <= 0 {
			continue
		}
		for _, br := range rects {
			if overlaps(br, pr) {
				return true
			}
		}
	}
	return false
}

func getSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}
