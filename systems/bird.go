package systems

import (
	"math"

	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/automoto/skydrift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// birdDrawScale shrinks the sprite slightly so the visible body sits
// inside the collision bounding box.
const birdDrawScale = 0.9

// UpdateBird integrates the bird's vertical motion, rotation and
// animation phases for the current frame.
func UpdateBird(ecs *ecs.ECS) {
	dt := DT(ecs)
	session := getOrCreateSession(ecs)

	tags.Bird.Each(ecs.World, func(e *donburi.Entry) {
		bird := components.Bird.Get(e)
		obj := components.Object.Get(e)
		integrateBird(bird, obj.Object, session.Current, dt)
		obj.Update()
	})
}

// integrateBird advances one bird by dt. While Playing the bird is a
// falling body with a capped drop speed; in Ready and GameOver it bobs
// around the vertical center while the world keeps drifting. Rotation
// always eases toward the velocity-derived target.
func integrateBird(b *components.BirdData, obj *resolv.Object, state cfg.GameStateID, dt float64) {
	b.TimeSinceFlap += dt
	if state == cfg.Playing {
		b.AnimPhase += dt * cfg.Bird.AnimRatePlaying
	} else {
		b.AnimPhase += dt * cfg.Bird.AnimRateIdle
	}

	centerY := obj.Y + obj.H/2
	switch state {
	case cfg.Playing:
		b.Velocity = math.Min(b.Velocity+cfg.Bird.Gravity*dt, cfg.Bird.MaxDropSpeed)
		centerY += b.Velocity * dt
	default:
		b.IdleOffset += dt * cfg.Bird.IdleSpeed
		centerY = float64(cfg.Window.Height)/2 + math.Sin(b.IdleOffset)*cfg.Bird.IdleAmplitude
	}

	target := clampf(-b.Velocity*cfg.Bird.RotationFactor, cfg.Bird.MinRotation, cfg.Bird.MaxRotation)
	b.Rotation += (target - b.Rotation) * math.Min(1, dt*cfg.Bird.RotationEaseRate)

	obj.Y = centerY - obj.H/2
}

// Flap resets the vertical velocity to the upward impulse. The flap
// timer only feeds the wing animation.
func Flap(b *components.BirdData) {
	b.Velocity = -cfg.Bird.FlapImpulse
	b.TimeSinceFlap = 0
}

// ResetBird restores the bird to its initial state without recreating
// the entity: centered vertically, at rest, level.
func ResetBird(b *components.BirdData, obj *resolv.Object) {
	*b = components.BirdData{}
	obj.Y = float64(cfg.Window.Height)/2 - obj.H/2
	obj.Update()
}

// birdRects derives the two collision rectangles from the bounding box:
// the inset main hitbox and the smaller head box near the top-front.
func birdRects(obj *resolv.Object) [2]aabb {
	main := aabb{
		X: obj.X + cfg.Bird.HitboxInsetX,
		Y: obj.Y + cfg.Bird.HitboxInsetY,
		W: obj.W - 2*cfg.Bird.HitboxInsetX,
		H: obj.H - 2*cfg.Bird.HitboxInsetY,
	}
	head := aabb{
		X: obj.X + obj.W/2 - cfg.Bird.HeadSize/2,
		Y: obj.Y + cfg.Bird.HeadTopInset,
		W: cfg.Bird.HeadSize,
		H: cfg.Bird.HeadSize,
	}
	return [2]aabb{main, head}
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var birdDrawOp = &ebiten.DrawImageOptions{}

// DrawBird renders the bird rotated about its center, wing offset by the
// animation phase.
func DrawBird(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Bird.Each(ecs.World, func(e *donburi.Entry) {
		bird := components.Bird.Get(e)
		obj := components.Object.Get(e)
		sprite := components.Sprite.Get(e)
		if sprite.Base == nil {
			return
		}

		centerX := obj.X + obj.W/2
		centerY := obj.Y + obj.H/2
		spriteW := cfg.Bird.SpriteWidth
		spriteH := cfg.Bird.SpriteHeight

		// Shared transform: sprite-local origin at the bird center,
		// then scale, rotate and move into place. Positive rotation
		// tilts the nose up, which is counterclockwise on screen.
		place := func(op *ebiten.DrawImageOptions) {
			op.GeoM.Scale(birdDrawScale, birdDrawScale)
			op.GeoM.Rotate(-bird.Rotation * math.Pi / 180)
			op.GeoM.Translate(centerX, centerY)
		}

		birdDrawOp.GeoM.Reset()
		birdDrawOp.GeoM.Translate(-spriteW/2, -spriteH/2)
		place(birdDrawOp)
		screen.DrawImage(sprite.Base, birdDrawOp)

		if sprite.Wing != nil {
			wingOffset := math.Sin(bird.AnimPhase*2) * cfg.Bird.WingSwing
			wingW := float64(sprite.Wing.Bounds().Dx())
			wingH := float64(sprite.Wing.Bounds().Dy())

			birdDrawOp.GeoM.Reset()
			// Wing center sits at (32, 44) in sprite-local coordinates.
			birdDrawOp.GeoM.Translate(-wingW/2, -wingH/2)
			birdDrawOp.GeoM.Translate(32-spriteW/2, 44+wingOffset-spriteH/2)
			place(birdDrawOp)
			screen.DrawImage(sprite.Wing, birdDrawOp)
		}
	})
}
