// Package icns assembles the macOS icon bundle from a scratch iconset
// directory, using the platform iconutil tool. The tool only exists on
// macOS, so production of the bundle is best effort.
package icns

import (
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	icnscodec "github.com/jackmordaunt/icns/v3"
)

// Result reports what the assembly produced. An unavailable or failing
// iconutil is an expected outcome, not an error, so callers have to look
// at Skipped rather than a nil-check.
type Result struct {
	Path    string
	Width   int // top resolution decoded back from the container
	Skipped bool
	Reason  string
}

// iconutil consumes fixed file names inside the .iconset directory.
var iconsetFiles = []struct {
	Size int
	Name string
}{
	{16, "icon_16x16.png"},
	{32, "icon_16x16@2x.png"},
	{32, "icon_32x32.png"},
	{64, "icon_32x32@2x.png"},
	{128, "icon_128x128.png"},
	{256, "icon_128x128@2x.png"},
	{256, "icon_256x256.png"},
	{512, "icon_256x256@2x.png"},
	{512, "icon_512x512.png"},
	{1024, "icon_512x512@2x.png"},
}

// Assemble resamples src into the ten iconset variants and runs iconutil
// over them to produce outPath. The scratch directory is deleted whatever
// happens.
func Assemble(src image.Image, outPath string) (Result, error) {
	return assemble(src, outPath, "iconutil", "")
}

func assemble(src image.Image, outPath, tool, tmpBase string) (Result, error) {
	scratch, err := os.MkdirTemp(tmpBase, "*.iconset")
	if err != nil {
		return Result{}, fmt.Errorf("create iconset dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	if err := writeIconset(src, scratch); err != nil {
		return Result{}, err
	}

	out, err := exec.Command(tool, "-c", "icns", scratch, "-o", outPath).CombinedOutput()
	if err != nil {
		reason := err.Error()
		if msg := strings.TrimSpace(string(out)); msg != "" {
			reason = msg
		}
		return Result{Skipped: true, Reason: reason}, nil
	}
	return verify(outPath)
}

// writeIconset fills dir with every canonical variant.
func writeIconset(src image.Image, dir string) error {
	for _, f := range iconsetFiles {
		resized := imaging.Resize(src, f.Size, f.Size, imaging.Lanczos)
		if err := imaging.Save(resized, filepath.Join(dir, f.Name)); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
	}
	return nil
}

// verify decodes the produced container to make sure iconutil wrote
// something usable, and reports its top resolution.
func verify(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, err := icnscodec.Decode(f)
	if err != nil {
		return Result{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return Result{Path: path, Width: img.Bounds().Dx()}, nil
}
