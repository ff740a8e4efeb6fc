package icon

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// fontSource yields a parsed font, or an error when the source is not
// usable on this machine.
type fontSource func() (*sfnt.Font, error)

// Candidate system fonts, best first. Whatever is installed wins; the
// embedded Go Regular closes the chain so selection always succeeds.
var fontPaths = []string{
	"arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
	"/System/Library/Fonts/Helvetica.ttc",
	"/Library/Fonts/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
}

func defaultSources() []fontSource {
	srcs := make([]fontSource, 0, len(fontPaths)+1)
	for _, p := range fontPaths {
		srcs = append(srcs, fileFont(p))
	}
	return append(srcs, builtinFont)
}

// fileFont loads a TrueType font or collection from disk. Collections
// (.ttc, like Helvetica on macOS) contribute their first font.
func fileFont(path string) fontSource {
	return func() (*sfnt.Font, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		c, err := sfnt.ParseCollection(b)
		if err != nil {
			return nil, err
		}
		return c.Font(0)
	}
}

// builtinFont parses the Go Regular TTF embedded in x/image. It has no
// failure mode that depends on the host.
func builtinFont() (*sfnt.Font, error) {
	return sfnt.Parse(goregular.TTF)
}

// selectFont tries each source in order and keeps the first that loads.
func selectFont(sources []fontSource) *sfnt.Font {
	for _, src := range sources {
		if f, err := src(); err == nil && f != nil {
			return f
		}
	}
	f, _ := sfnt.Parse(goregular.TTF)
	return f
}

// newFace sizes the selected font. basicfont is the floor when face
// construction fails; the glyph then comes out small on large canvases,
// which beats not rendering at all.
func newFace(f *sfnt.Font, points float64) font.Face {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
