// Package icon draws the Cockpit CFDT application glyph: a white capital C
// on the CFDT orange, on a square canvas of any edge length.
package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Couleurs du projet.
var (
	Background = color.NRGBA{R: 0xE7, G: 0x59, B: 0x1C, A: 0xFF} // orange CFDT
	Foreground = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Options controls the drawing. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Letter     string
	Background color.Color
	Foreground color.Color

	// BiasFrac lifts the glyph above the geometric center by this fraction
	// of the font size, compensating the baseline offset of typical fonts.
	// Cosmetic tuning constant, kept adjustable.
	BiasFrac float64
}

func DefaultOptions() Options {
	return Options{
		Letter:     "C",
		Background: Background,
		Foreground: Foreground,
		BiasFrac:   0.1,
	}
}

// Render draws the app icon at the given edge length.
func Render(size int) *image.NRGBA {
	return RenderWith(size, DefaultOptions())
}

// RenderWith draws a size×size canvas filled with the background color and
// the letter centered on it. The font size is 0.6 of the edge length. It
// never fails: missing system fonts fall through to the embedded fallback.
func RenderWith(size int, o Options) *image.NRGBA {
	img := imaging.New(size, size, o.Background)

	points := float64(size) * 0.6
	face := newFace(selectFont(defaultSources()), points)
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(o.Foreground),
		Face: face,
	}

	// Center the measured bounding box, not the nominal font box.
	b, _ := font.BoundString(face, o.Letter)
	w := b.Max.X - b.Min.X
	h := b.Max.Y - b.Min.Y
	bias := fixed.Int26_6(math.Round(points * o.BiasFrac * 64))
	d.Dot.X = (fixed.I(size)-w)/2 - b.Min.X
	d.Dot.Y = (fixed.I(size)-h)/2 - b.Min.Y - bias
	d.DrawString(o.Letter)
	return img
}
