package config

import "github.com/yohamta/donburi/ecs"

// GameStateID identifies the session state.
type GameStateID int

const (
	Ready GameStateID = iota
	Playing
	GameOver
)

func (s GameStateID) String() string {
	switch s {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Default is the render layer all renderers are registered on.
const Default = ecs.LayerDefault
