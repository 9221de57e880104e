package factory

import (
	"image"
	"image/color"

	cfg "github.com/automoto/skydrift/config"
)

// Bird sprite rasterization. Like the scenery tiles this runs once at
// startup; the wing is a separate image so the renderer can bob it
// against the body.

func toNRGBA(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// newBirdBase draws the body, belly, beak and eye into a 96x80 sprite.
func newBirdBase() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, int(cfg.Bird.SpriteWidth), int(cfg.Bird.SpriteHeight)))

	// Body and belly ellipses
	blendEllipse(img, 48, 41, 30, 21, toNRGBA(cfg.BodyYellow))
	blendEllipse(img, 50, 44, 18, 12, toNRGBA(cfg.BellyCream))

	// Beak: triangle pointing forward from the face
	fillTriangle(img, [3][2]float64{{70, 46}, {92, 40}, {92, 52}}, toNRGBA(cfg.BeakOrange))

	// Eye
	blendEllipse(img, 54, 38, 10, 10, toNRGBA(cfg.EyeWhite))
	blendEllipse(img, 58, 38, 4, 4, toNRGBA(cfg.EyeDark))

	return img
}

// newBirdWing draws the outlined wing ellipse into its own 44x36 image.
func newBirdWing() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 44, 36))
	blendEllipse(img, 22, 18, 22, 12, toNRGBA(cfg.Outline))
	blendEllipse(img, 22, 18, 19, 9, toNRGBA(cfg.WingOrange))
	return img
}

// fillTriangle scan-fills a triangle, clipped to the image.
func fillTriangle(img *image.NRGBA, pts [3][2]float64, c color.NRGBA) {
	minY := int(pts[0][1])
	maxY := minY
	for _, p := range pts {
		if int(p[1]) < minY {
			minY = int(p[1])
		}
		if int(p[1]) > maxY {
			maxY = int(p[1])
		}
	}

	b := img.Bounds()
	for y := max(minY, b.Min.Y); y <= min(maxY, b.Max.Y-1); y++ {
		fy := float64(y) + 0.5
		xs := make([]float64, 0, 3)
		for i := 0; i < 3; i++ {
			p1 := pts[i]
			p2 := pts[(i+1)%3]
			if (p1[1] <= fy) == (p2[1] <= fy) {
				continue
			}
			t := (fy - p1[1]) / (p2[1] - p1[1])
			xs = append(xs, p1[0]+t*(p2[0]-p1[0]))
		}
		if len(xs) < 2 {
			continue
		}
		lo, hi := xs[0], xs[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		for x := max(int(lo), b.Min.X); x < min(int(hi)+1, b.Max.X); x++ {
			blendPx(img, x, y, c)
		}
	}
}
