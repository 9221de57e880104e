package factory

import (
	"github.com/automoto/skydrift/archetypes"
	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/automoto/skydrift/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePipe spawns one gap-pair at x with the given gap center and
// size, registering both obstruction rectangles in the collision space.
func CreatePipe(ecs *ecs.ECS, space *resolv.Space, x, gapY, gapSize float64) *donburi.Entry {
	pipe := archetypes.Pipe.Spawn(ecs)

	groundLine := float64(cfg.Window.Height - cfg.Window.GroundHeight)
	topH := gapY - gapSize/2
	bottomY := gapY + gapSize/2

	top := resolv.NewObject(x, 0, cfg.Pipe.Width, topH)
	bottom := resolv.NewObject(x, bottomY, cfg.Pipe.Width, groundLine-bottomY)
	top.AddTags(tags.ResolvPipe)
	bottom.AddTags(tags.ResolvPipe)
	top.Data = pipe
	bottom.Data = pipe
	if space != nil {
		space.Add(top, bottom)
	}

	components.Pipe.SetValue(pipe, components.PipeData{
		X:       x,
		GapY:    gapY,
		GapSize: gapSize,
		Top:     top,
		Bottom:  bottom,
	})

	return pipe
}
