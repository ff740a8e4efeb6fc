// Package hicolor lays out the freedesktop hicolor theme tree consumed by
// Linux desktop packaging, plus the legacy pixmaps copy.
package hicolor

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Sizes matches the directories Linux desktops actually look up.
var Sizes = []int{16, 24, 32, 48, 64, 96, 128, 256, 512}

// pixmapSize is the single size duplicated into pixmaps/.
const pixmapSize = 128

// Emit writes <root>/hicolor/<N>x<N>/apps/<name> for every size, and the
// pixmap copy under <root>/pixmaps. One bad size does not stop the rest.
func Emit(src image.Image, root, name string) error {
	var errs []error
	for _, size := range Sizes {
		dir := filepath.Join(root, "hicolor", fmt.Sprintf("%dx%d", size, size), "apps")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", dir, err))
			continue
		}
		resized := imaging.Resize(src, size, size, imaging.Lanczos)
		if err := imaging.Save(resized, filepath.Join(dir, name)); err != nil {
			errs = append(errs, fmt.Errorf("%dx%d: %w", size, size, err))
			continue
		}
		if size == pixmapSize {
			if err := emitPixmap(resized, root, name); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func emitPixmap(img image.Image, root, name string) error {
	dir := filepath.Join(root, "pixmaps")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", dir, err)
	}
	return imaging.Save(img, filepath.Join(dir, name))
}
