package components

import (
	cfg "github.com/automoto/skydrift/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SessionData is the game state machine plus the round-ending flash.
type SessionData struct {
	Current cfg.GameStateID

	// Flash tweens the white overlay alpha down to zero after a
	// round-ending collision. Nil while no flash is active.
	Flash      *gween.Tween
	FlashAlpha float32

	Quit bool
}

var Session = donburi.NewComponentType[SessionData]()
