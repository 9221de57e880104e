package components

import "github.com/yohamta/donburi"

// ScoreData tracks the round score and the best score. Current resets to
// zero on round reset; Best only ever grows and is synced to disk at
// process start and end.
type ScoreData struct {
	Current int
	Best    int
}

var Score = donburi.NewComponentType[ScoreData]()
