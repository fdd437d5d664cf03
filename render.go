package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/simplezoom/common"
	"golang.org/x/image/colornames"
)

const (
	pillarRows    = 24
	pillarSpacing = 6.0
	pillarWidth   = 1.0
	pillarHeight  = 4.0
	eyeHeight     = 1.7
	farPlane      = pillarRows * pillarSpacing
)

type pillar struct {
	x, z float64
}

// scene is a field of pillars rendered with a pinhole projection. Only the
// vertical field of view changes between frames.
type scene struct {
	pillars []pillar
}

func newScene() *scene {
	s := &scene{}
	// far to near so nearer pillars overdraw farther ones
	for row := pillarRows; row >= 1; row-- {
		z := float64(row) * pillarSpacing
		for col := -4; col <= 4; col++ {
			s.pillars = append(s.pillars, pillar{x: float64(col)*pillarSpacing + pillarSpacing/2, z: z})
		}
	}
	return s
}

// focalLength returns the projection scale in pixels for a vertical FOV in
// degrees.
func focalLength(fov float64) float64 {
	half := fov * math.Pi / 360
	t := math.Tan(half)
	if t <= 0 || math.IsInf(t, 0) || math.IsNaN(t) {
		return 0
	}
	return (common.BaseHeight / 2) / t
}

func (s *scene) Draw(screen *ebiten.Image, fov float64) {
	screen.Fill(colornames.Midnightblue)
	horizon := float32(common.BaseHeight / 2)
	vector.FillRect(screen, 0, horizon, common.BaseWidth, common.BaseHeight-horizon, colornames.Darkolivegreen, false)

	f := focalLength(fov)
	if f == 0 {
		return
	}

	cx, cy := float64(common.BaseWidth)/2, float64(common.BaseHeight)/2
	for _, p := range s.pillars {
		scale := f / p.z
		left := cx + (p.x-pillarWidth/2)*scale
		width := pillarWidth * scale
		top := cy - (pillarHeight-eyeHeight)*scale
		height := pillarHeight * scale
		if left+width < 0 || left > common.BaseWidth {
			continue
		}

		fog := float32(p.z / farPlane)
		shade := color.RGBA{
			R: uint8(common.Lerp(220, 25, fog)),
			G: uint8(common.Lerp(200, 25, fog)),
			B: uint8(common.Lerp(170, 112, fog)),
			A: 0xff,
		}
		vector.FillRect(screen, float32(left), float32(top), float32(width), float32(height), shade, false)
	}

	// crosshair
	vector.StrokeLine(screen, float32(cx-6), float32(cy), float32(cx+6), float32(cy), 1, colornames.White, false)
	vector.StrokeLine(screen, float32(cx), float32(cy-6), float32(cx), float32(cy+6), 1, colornames.White, false)
}
