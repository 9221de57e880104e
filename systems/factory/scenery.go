package factory

import (
	"math/rand"

	"github.com/automoto/skydrift/archetypes"
	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// skyStripRows is the vertical resolution of the gradient strip; linear
// filtering stretches it over the full screen height.
const skyStripRows = 128

// CreateScenery generates all parallax tiles from rng and spawns the
// backdrop entity. The foreground scrolls at the obstacle speed so
// ground and pipes appear to move together.
func CreateScenery(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	scenery := archetypes.Scenery.Spawn(ecs)

	height := float64(cfg.Window.Height)

	layer := func(tile *ebiten.Image, speed, y float64) components.ParallaxLayer {
		return components.ParallaxLayer{
			Tile:      tile,
			TileWidth: float64(tile.Bounds().Dx()),
			Speed:     speed,
			Y:         y,
		}
	}

	data := components.SceneryData{
		Clouds: layer(ebiten.NewImageFromImage(newCloudTile(rng)),
			cfg.Scenery.CloudSpeed, height*cfg.Scenery.CloudY),
		Mountains: layer(ebiten.NewImageFromImage(newMountainTile(rng)),
			cfg.Scenery.MountainSpeed, height*cfg.Scenery.MountainY),
		Hills: layer(ebiten.NewImageFromImage(newHillTile(rng)),
			cfg.Scenery.HillSpeed, height*cfg.Scenery.HillY),
		Foreground: layer(ebiten.NewImageFromImage(newForegroundTile(rng)),
			cfg.Pipe.Speed, height-float64(cfg.Window.GroundHeight)),
		Sun:      ebiten.NewImageFromImage(newSunImage(cfg.Scenery.SunRadius)),
		SkyStrip: ebiten.NewImage(1, skyStripRows),
	}
	components.Scenery.Set(scenery, &data)

	return scenery
}
