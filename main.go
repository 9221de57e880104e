package main

import (
	"errors"
	"image"
	"log"

	"github.com/automoto/skydrift/config"
	"github.com/automoto/skydrift/fonts"
	"github.com/automoto/skydrift/scenes"
	"github.com/automoto/skydrift/systems"
	"github.com/hajimehoshi/ebiten/v2"
	resfonts "github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  *scenes.FlightScene
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.Score, resfonts.PressStart2P_ttf, 48)
	fonts.LoadFontWithSize(fonts.Headline, resfonts.PressStart2P_ttf, 24)
	fonts.LoadFontWithSize(fonts.Small, resfonts.PressStart2P_ttf, 16)

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewFlightScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Window.Width, config.Window.Height)
	return config.Window.Width, config.Window.Height
}

func main() {
	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Caption)
	ebiten.SetTPS(config.Window.TPS)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	err := ebiten.RunGame(NewGame())
	systems.SaveBestScore()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
