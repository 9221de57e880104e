package systems

import (
	"image/color"
	"math"

	"github.com/automoto/skydrift/components"
	cfg "github.com/automoto/skydrift/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScenery advances the sky/sun cycle clock and every parallax
// layer offset. Scenery animates in all game states.
func UpdateScenery(ecs *ecs.ECS) {
	dt := DT(ecs)
	components.Scenery.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Scenery.Get(e)
		s.Time += dt
		advanceLayer(&s.Clouds, dt)
		advanceLayer(&s.Mountains, dt)
		advanceLayer(&s.Hills, dt)
		advanceLayer(&s.Foreground, dt)
	})
}

// advanceLayer keeps the horizontal offset in [0, TileWidth).
func advanceLayer(l *components.ParallaxLayer, dt float64) {
	if l.TileWidth <= 0 {
		return
	}
	l.Offset = math.Mod(l.Offset+l.Speed*dt, l.TileWidth)
	if l.Offset < 0 {
		l.Offset += l.TileWidth
	}
}

// skyColors interpolates the (top, bottom) gradient pair for time t,
// blending per RGB channel between adjacent time-of-day phases.
func skyColors(t float64) (top, bottom color.NRGBA) {
	frac := math.Mod(t, cfg.Scenery.SkyCycle) / cfg.Scenery.SkyCycle
	n := len(cfg.SkyPhases)
	pos := frac * float64(n)
	idx := int(pos) % n
	next := (idx + 1) % n
	blend := pos - math.Floor(pos)
	top = lerpColor(cfg.SkyPhases[idx].Top, cfg.SkyPhases[next].Top, blend)
	bottom = lerpColor(cfg.SkyPhases[idx].Bottom, cfg.SkyPhases[next].Bottom, blend)
	return top, bottom
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: 255,
	}
}

// sunPosition returns the glow center for time t: a fixed-radius arc
// around a screen-relative point, on its own cycle length.
func sunPosition(t float64) (x, y float64) {
	frac := math.Mod(t, cfg.Scenery.SunCycle) / cfg.Scenery.SunCycle
	angle := math.Pi*cfg.Scenery.SunBaseAngle + frac*math.Pi*cfg.Scenery.SunAngleSpan
	cx := float64(cfg.Window.Width) * cfg.Scenery.SunCenterX
	cy := float64(cfg.Window.Height) * cfg.Scenery.SunCenterY
	radius := float64(cfg.Window.Height) * cfg.Scenery.SunPathRadius
	return cx + math.Cos(angle)*radius, cy + math.Sin(angle)*radius
}

var sceneryDrawOp = &ebiten.DrawImageOptions{}

// DrawScenery composes the backdrop back to front: sky gradient, sun
// glow, then clouds, mountains, hills and the foreground band.
func DrawScenery(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Scenery.First(ecs.World)
	if !ok {
		return
	}
	s := components.Scenery.Get(entry)

	drawSky(screen, s)
	drawSun(screen, s)
	drawLayer(screen, &s.Clouds)
	drawLayer(screen, &s.Mountains)
	drawLayer(screen, &s.Hills)
	drawLayer(screen, &s.Foreground)
}

// drawSky refills the 1px-wide gradient strip with the current colors
// and stretches it over the whole screen with linear filtering.
func drawSky(screen *ebiten.Image, s *components.SceneryData) {
	if s.SkyStrip == nil {
		return
	}
	top, bottom := skyColors(s.Time)
	rows := s.SkyStrip.Bounds().Dy()
	buf := s.SkyBuf(rows)
	for y := 0; y < rows; y++ {
		blend := float64(y) / float64(rows-1)
		c := lerpColor(top, bottom, blend)
		buf[y*4+0] = c.R
		buf[y*4+1] = c.G
		buf[y*4+2] = c.B
		buf[y*4+3] = 255
	}
	s.SkyStrip.WritePixels(buf)

	sceneryDrawOp.GeoM.Reset()
	sceneryDrawOp.GeoM.Scale(float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())/float64(rows))
	sceneryDrawOp.Filter = ebiten.FilterLinear
	screen.DrawImage(s.SkyStrip, sceneryDrawOp)
	sceneryDrawOp.Filter = ebiten.FilterNearest
}

func drawSun(screen *ebiten.Image, s *components.SceneryData) {
	if s.Sun == nil {
		return
	}
	sx, sy := sunPosition(s.Time)
	w := float64(s.Sun.Bounds().Dx())
	h := float64(s.Sun.Bounds().Dy())
	sceneryDrawOp.GeoM.Reset()
	sceneryDrawOp.GeoM.Translate(sx-w/2, sy-h/2)
	screen.DrawImage(s.Sun, sceneryDrawOp)
}

// drawLayer tiles the layer image from -offset rightward until the
// screen width is covered.
func drawLayer(screen *ebiten.Image, l *components.ParallaxLayer) {
	if l.Tile == nil || l.TileWidth <= 0 {
		return
	}
	width := float64(screen.Bounds().Dx())
	for x := -l.Offset; x < width; x += l.TileWidth {
		sceneryDrawOp.GeoM.Reset()
		sceneryDrawOp.GeoM.Translate(x, l.Y)
		screen.DrawImage(l.Tile, sceneryDrawOp)
	}
}
