package icon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Target is one output raster to produce.
type Target struct {
	Size int
	Path string
}

// Emit renders one icon and writes it as PNG, creating parent directories
// as needed.
func Emit(t Target, o Options) error {
	if dir := filepath.Dir(t.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	return imaging.Save(RenderWith(t.Size, o), t.Path)
}

// EmitAll produces every target, still attempting the remaining ones when a
// write fails. report, if non-nil, is called once per target with the
// outcome of that target.
func EmitAll(targets []Target, o Options, report func(t Target, err error)) error {
	var errs []error
	for _, t := range targets {
		err := Emit(t, o)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", t.Path, err))
		}
		if report != nil {
			report(t, err)
		}
	}
	return errors.Join(errs...)
}
