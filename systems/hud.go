package systems

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/automoto/skydrift/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Approximate glyph advances for centering; the HUD font is monospace so
// the advance equals the point size.
const (
	scoreGlyphW    = 48
	headlineGlyphW = 24
	smallGlyphW    = 16
)

var (
	hudShadow = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// DrawHUD renders the score display, the state messages and the
// round-ending flash overlay, always on top of the world.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry := sessionEntry(ecs)
	session := components.Session.Get(entry)
	score := components.Score.Get(entry)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	if session.FlashAlpha > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height),
			color.NRGBA{R: 255, G: 255, B: 255, A: uint8(session.FlashAlpha)}, false)
	}

	drawHighScore(screen, score.Best)

	switch session.Current {
	case cfg.Playing:
		drawScore(screen, score.Current, width, height)
	case cfg.Ready:
		vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height),
			color.NRGBA{A: cfg.HUD.ReadyDimAlpha}, false)
		drawMessage(screen, cfg.HUD.Title, cfg.HUD.ReadyPrompt, width, height)
	case cfg.GameOver:
		drawScore(screen, score.Current, width, height)
		drawMessage(screen, cfg.HUD.GameOverTitle, cfg.HUD.GameOverPrompt, width, height)
	}
}

// drawScore renders the big drop-shadowed round score, centered.
func drawScore(screen *ebiten.Image, score int, width, height float64) {
	face := fonts.Score.Get()
	str := strconv.Itoa(score)
	x := int((width - float64(len(str)*scoreGlyphW)) / 2)
	y := int(height * cfg.HUD.ScoreY)
	text.Draw(screen, str, face, x+4, y+4, hudShadow)
	text.Draw(screen, str, face, x, y, cfg.White)
}

func drawMessage(screen *ebiten.Image, headline, subtext string, width, height float64) {
	headFace := fonts.Headline.Get()
	hx := int((width - float64(len(headline)*headlineGlyphW)) / 2)
	hy := int(height * cfg.HUD.HeadlineY)
	text.Draw(screen, headline, headFace, hx+3, hy+3, hudShadow)
	text.Draw(screen, headline, headFace, hx, hy, cfg.White)

	subFace := fonts.Small.Get()
	sx := int((width - float64(len(subtext)*smallGlyphW)) / 2)
	sy := int(height * cfg.HUD.SubtextY)
	text.Draw(screen, subtext, subFace, sx, sy, cfg.OffWhite)
}

func drawHighScore(screen *ebiten.Image, best int) {
	face := fonts.Small.Get()
	text.Draw(screen, fmt.Sprintf("High score: %d", best), face, 16, 32, cfg.White)
}
