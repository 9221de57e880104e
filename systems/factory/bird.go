package factory

import (
	"github.com/automoto/skydrift/archetypes"
	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/automoto/skydrift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBird spawns the player bird centered vertically at its fixed x
// anchor and registers its bounding box in the collision space.
func CreateBird(ecs *ecs.ECS, space *resolv.Space) *donburi.Entry {
	bird := archetypes.Bird.Spawn(ecs)

	obj := resolv.NewObject(
		cfg.Bird.X-cfg.Bird.BoxWidth/2,
		float64(cfg.Window.Height)/2-cfg.Bird.BoxHeight/2,
		cfg.Bird.BoxWidth,
		cfg.Bird.BoxHeight,
	)
	obj.AddTags(tags.ResolvBird)
	obj.Data = bird
	components.Object.SetValue(bird, components.ObjectData{Object: obj})
	if space != nil {
		space.Add(obj)
	}

	components.Bird.SetValue(bird, components.BirdData{})
	components.Sprite.SetValue(bird, components.SpriteData{
		Base: ebiten.NewImageFromImage(newBirdBase()),
		Wing: ebiten.NewImageFromImage(newBirdWing()),
	})

	return bird
}
