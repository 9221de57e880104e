package scenes

import (
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/automoto/skydrift/systems"
	"github.com/automoto/skydrift/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FlightScene runs the whole game: backdrop, bird, pipes and HUD live in
// one ECS world and the session component carries the state machine.
type FlightScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewFlightScene() *FlightScene {
	return &FlightScene{}
}

func (fs *FlightScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *FlightScene) Draw(screen *ebiten.Image) {
	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

// QuitRequested reports whether the player asked to close the game.
func (fs *FlightScene) QuitRequested() bool {
	if fs.ecs == nil {
		return false
	}
	entry, ok := components.Session.First(fs.ecs.World)
	if !ok {
		return false
	}
	return components.Session.Get(entry).Quit
}

func (fs *FlightScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Clock and input feed everything else, so they run first. Session
	// consumes edge-triggered input before the simulation systems move
	// the world, and collisions run after movement so they see final
	// positions.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.UpdateBird)
	ecs.AddSystem(systems.UpdatePipes)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateScenery)

	// Renderers, back to front
	ecs.AddRenderer(cfg.Default, systems.DrawScenery)
	ecs.AddRenderer(cfg.Default, systems.DrawPipes)
	ecs.AddRenderer(cfg.Default, systems.DrawBird)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	fs.ecs = ecs

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// The space extends past the right edge so freshly spawned pipes are
	// registered before they scroll into view.
	spaceEntry := factory.CreateSpace(fs.ecs,
		cfg.Window.Width+int(cfg.Pipe.Width+cfg.Pipe.SpawnOffset),
		cfg.Window.Height,
		16, 16,
	)
	space := components.Space.Get(spaceEntry)

	factory.CreateScenery(fs.ecs, rng)
	factory.CreateSession(fs.ecs, systems.LoadBestScore(), rng)
	factory.CreateBird(fs.ecs, space)
}
