package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID identifies a logical input action.
type ActionID int

const (
	ActionFlap ActionID = iota
	ActionQuit

	ActionCount
)

// ActionBinding maps an action to the physical inputs that trigger it.
type ActionBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig contains the action bindings
type InputConfig struct {
	Bindings map[ActionID]ActionBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]ActionBinding{
			ActionFlap: {
				Keys:         []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ},
			},
		},
	}
}
