package hicolor

import (
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestEmitTree(t *testing.T) {
	root := t.TempDir()
	src := imaging.New(600, 600, color.NRGBA{R: 0xE7, G: 0x59, B: 0x1C, A: 0xFF})
	if err := Emit(src, root, "app.png"); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	for _, size := range Sizes {
		p := filepath.Join(root, "hicolor", fmt.Sprintf("%dx%d", size, size), "apps", "app.png")
		w, h := pngSize(t, p)
		if w != size || h != size {
			t.Errorf("%s: %dx%d, want %dx%d", p, w, h, size, size)
		}
	}
	pix := filepath.Join(root, "pixmaps", "app.png")
	if w, _ := pngSize(t, pix); w != pixmapSize {
		t.Errorf("pixmap width = %d, want %d", w, pixmapSize)
	}
}

func pngSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("%s: %v", path, err)
	}
	return cfg.Width, cfg.Height
}
