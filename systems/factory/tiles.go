package factory

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	cfg "github.com/automoto/skydrift/config"
)

// Procedural tile synthesis. Every tile is rasterized once at startup
// into an NRGBA image and uploaded as a texture; nothing here runs per
// frame. All randomness flows through the caller's rand source so tests
// can pin a seed.

// newCloudTile scatters overlapping soft ellipses into four cloud
// clusters across a wide tile.
func newCloudTile(rng *rand.Rand) *image.NRGBA {
	tile := image.NewNRGBA(image.Rect(0, 0, 480, 140))
	puff := color.NRGBA{R: 255, G: 255, B: 255, A: 170}
	for i := 0; i < 4; i++ {
		baseX := i*120 - 50
		baseY := rng.Intn(21)
		for j := 0; j < 6; j++ {
			x := baseX + 10 + rng.Intn(151)
			y := baseY + 10 + rng.Intn(71)
			w := 60 + rng.Intn(61)
			h := 40 + rng.Intn(51)
			blendEllipse(tile, float64(x)+float64(w)/2, float64(y)+float64(h)/2,
				float64(w)/2, float64(h)/2, puff)
		}
	}
	return tile
}

// newMountainTile builds a jagged ridge silhouette with a shaded
// duplicate offset below it.
func newMountainTile(rng *rand.Rand) *image.NRGBA {
	width := cfg.Window.Width
	tileH := 240
	tile := image.NewNRGBA(image.Rect(0, 0, width, tileH))

	ridge := color.NRGBA{R: 70, G: 90, B: 150, A: 255}
	shade := color.NRGBA{R: 55, G: 70, B: 120, A: 255}

	// Ridge height at every 120px step; columns interpolate between them.
	step := 120
	var peaks []int
	for x := 0; x <= width+step; x += step {
		peaks = append(peaks, 60+rng.Intn(81))
	}

	ridgeAt := func(x int) int {
		i := x / step
		if i >= len(peaks)-1 {
			i = len(peaks) - 2
		}
		t := float64(x%step) / float64(step)
		return int(float64(peaks[i]) + (float64(peaks[i+1])-float64(peaks[i]))*t)
	}

	for x := 0; x < width; x++ {
		h := ridgeAt(x)
		fillRect(tile, x, tileH-h, 1, h, ridge)
		if h > 20 {
			fillRect(tile, x, tileH-h+20, 1, h-20, shade)
		}
	}
	return tile
}

// newHillTile overlaps two large ellipses, the second shaded.
func newHillTile(_ *rand.Rand) *image.NRGBA {
	width := cfg.Window.Width
	tileH := 200
	tile := image.NewNRGBA(image.Rect(0, 0, width, tileH))

	grass := color.NRGBA{R: 90, G: 180, B: 90, A: 255}
	shade := color.NRGBA{R: 60, G: 140, B: 60, A: 255}

	blendEllipse(tile, -160+float64(width)/2, float64(tileH)-160+120, float64(width)/2, 120, grass)
	blendEllipse(tile, 120+float64(width)/2, float64(tileH)-140+110, float64(width)/2, 110, shade)
	return tile
}

// newForegroundTile paints the banded ground with a tilled dirt strip
// beneath it. Matches the obstacle scroll speed so ground and pipes move
// together.
func newForegroundTile(_ *rand.Rand) *image.NRGBA {
	width := cfg.Window.Width
	tileH := cfg.Window.GroundHeight
	tile := image.NewNRGBA(image.Rect(0, 0, width, tileH))

	fillRect(tile, 0, 0, width, tileH, color.NRGBA{R: 220, G: 200, B: 120, A: 255})
	for x := 0; x < width; x += 24 {
		fillRect(tile, x, 0, 14, tileH, color.NRGBA{R: 200, G: 180, B: 100, A: 255})
	}
	fillRect(tile, 0, tileH-36, width, 36, color.NRGBA{R: 145, G: 90, B: 60, A: 255})
	for x := 0; x < width; x += 38 {
		fillRect(tile, x, tileH-40, 20, 12, color.NRGBA{R: 110, G: 70, B: 40, A: 255})
	}
	return tile
}

// newSunImage rasterizes a radial glow: full warm color at the center
// fading to transparent at the rim.
func newSunImage(radius int) *image.NRGBA {
	size := radius * 2
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x - radius)
			dy := float64(y - radius)
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= float64(radius) {
				continue
			}
			alpha := 1 - d/float64(radius)
			img.SetNRGBA(x, y, color.NRGBA{
				R: 255, G: 220, B: 140,
				A: uint8(255 * alpha),
			})
		}
	}
	return img
}

// fillRect source-over blends a solid rectangle, clipped to the image.
func fillRect(img *image.NRGBA, x, y, w, h int, c color.NRGBA) {
	b := img.Bounds()
	for yy := max(y, b.Min.Y); yy < min(y+h, b.Max.Y); yy++ {
		for xx := max(x, b.Min.X); xx < min(x+w, b.Max.X); xx++ {
			blendPx(img, xx, yy, c)
		}
	}
}

// blendEllipse source-over blends a filled ellipse, clipped to the image.
func blendEllipse(img *image.NRGBA, cx, cy, rx, ry float64, c color.NRGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	b := img.Bounds()
	y0 := max(int(cy-ry), b.Min.Y)
	y1 := min(int(cy+ry)+1, b.Max.Y)
	for y := y0; y < y1; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		x0 := max(int(cx-half), b.Min.X)
		x1 := min(int(cx+half)+1, b.Max.X)
		for x := x0; x < x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				blendPx(img, x, y, c)
			}
		}
	}
}

func blendPx(img *image.NRGBA, x, y int, c color.NRGBA) {
	if c.A == 255 {
		img.SetNRGBA(x, y, c)
		return
	}
	dst := img.NRGBAAt(x, y)
	sa := float64(c.A) / 255
	da := float64(dst.A) / 255
	outA := sa + da*(1-sa)
	if outA == 0 {
		img.SetNRGBA(x, y, color.NRGBA{})
		return
	}
	blend := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / outA
		return uint8(v + 0.5)
	}
	img.SetNRGBA(x, y, color.NRGBA{
		R: blend(c.R, dst.R),
		G: blend(c.G, dst.G),
		B: blend(c.B, dst.B),
		A: uint8(outA*255 + 0.5),
	})
}
