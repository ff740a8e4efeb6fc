package icon

import (
	"image"
	"testing"
)

func TestRenderSquare(t *testing.T) {
	for _, size := range []int{1, 16, 32, 64, 257} {
		img := Render(size)
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("Render(%d) bounds = %dx%d, want %dx%d", size, b.Dx(), b.Dy(), size, size)
		}
	}
}

func TestRenderBackgroundAndGlyph(t *testing.T) {
	img := Render(64)
	if got := img.NRGBAAt(0, 0); got != Background {
		t.Errorf("corner pixel = %v, want background %v", got, Background)
	}
	if _, _, _, _, ok := inkBounds(img); !ok {
		t.Error("no foreground pixels drawn")
	}
}

func TestGlyphHorizontallyCentered(t *testing.T) {
	const size = 256
	img := Render(size)
	minX, _, maxX, _, ok := inkBounds(img)
	if !ok {
		t.Fatal("no glyph drawn")
	}
	center := float64(minX+maxX+1) / 2
	if diff := center - float64(size)/2; diff > 1 || diff < -1 {
		t.Errorf("glyph center = %.1f, want %d ±1 (bbox %d..%d)", center, size/2, minX, maxX)
	}
}

func TestRenderWithCustomLetter(t *testing.T) {
	o := DefaultOptions()
	o.Letter = "X"
	img := RenderWith(48, o)
	if _, _, _, _, ok := inkBounds(img); !ok {
		t.Error("custom letter drew nothing")
	}
}

// inkBounds returns the bounding box of every pixel that differs from the
// background, inclusive.
func inkBounds(img *image.NRGBA) (minX, minY, maxX, maxY int, ok bool) {
	b := img.Bounds()
	minX, minY = b.Max.X, b.Max.Y
	maxX, maxY = -1, -1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y) == Background {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	return minX, minY, maxX, maxY, maxX >= 0
}
