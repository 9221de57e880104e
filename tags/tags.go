package tags

import "github.com/yohamta/donburi"

var (
	Bird = donburi.NewTag().SetName("Bird")
	Pipe = donburi.NewTag().SetName("Pipe")
)

// Resolv tags for collision queries
const (
	ResolvBird = "bird"
	ResolvPipe = "pipe"
)
