package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ParallaxLayer is one repeating backdrop tile. Offset stays in
// [0, TileWidth) and advances by Speed each second. TileWidth is kept
// separate from Tile so the scroll math does not need a live image.
type ParallaxLayer struct {
	Tile      *ebiten.Image
	TileWidth float64
	Speed     float64
	Y         float64
	Offset    float64
}

// SceneryData composes the full backdrop: sky gradient, sun glow and the
// four scrolling layers, back to front.
type SceneryData struct {
	Time float64

	Clouds     ParallaxLayer
	Mountains  ParallaxLayer
	Hills      ParallaxLayer
	Foreground ParallaxLayer

	Sun      *ebiten.Image
	SkyStrip *ebiten.Image // 1xN gradient strip scaled over the screen
	skyBuf   []byte
}

// SkyBuf returns the reusable pixel buffer for the gradient strip.
func (s *SceneryData) SkyBuf(n int) []byte {
	if len(s.skyBuf) != n*4 {
		s.skyBuf = make([]byte, n*4)
	}
	return s.skyBuf
}

var Scenery = donburi.NewComponentType[SceneryData]()
