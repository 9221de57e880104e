package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PipeData is one gap-pair obstacle. X is the left edge of both pipes;
// the gap parameters are fixed at spawn time. Top and Bottom are the
// obstruction rectangles registered in the collision space; they are
// repositioned from X every frame.
type PipeData struct {
	X       float64
	GapY    float64
	GapSize float64
	Passed  bool

	Top    *resolv.Object
	Bottom *resolv.Object
}

var Pipe = donburi.NewComponentType[PipeData]()
