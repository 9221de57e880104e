package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData holds the procedurally generated bird images. The wing is a
// separate image so it can bob against the body each frame.
type SpriteData struct {
	Base *ebiten.Image
	Wing *ebiten.Image
}

var Sprite = donburi.NewComponentType[SpriteData]()
