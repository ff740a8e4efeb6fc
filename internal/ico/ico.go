// Package ico writes the Windows multi-resolution icon container.
//
// Layout per https://en.wikipedia.org/wiki/ICO_(file_format): a 6-byte
// ICONDIR, one 16-byte ICONDIRENTRY per image, then the PNG payloads.
package ico

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// Sizes is the canonical Windows resolution set embedded in the container.
var Sizes = []int{16, 32, 48, 256}

type icondir struct {
	Reserved  uint16
	ImageType uint16 // 1 = icon
	NumImages uint16
}

type icondirentry struct {
	Width        uint8 // 0 means 256
	Height       uint8
	NumColors    uint8
	Reserved     uint8
	ColorPlanes  uint16 // windows accepts 0 or 1, icons in the wild use 1
	BitsPerPixel uint16 // 32 for PNG payloads
	SizeInBytes  uint32
	Offset       uint32
}

// Encode resamples src into each canonical size and writes the container.
// The glyph is not re-rendered; every embedded image comes from the one
// source raster.
func Encode(w io.Writer, src image.Image) error {
	payloads := make([][]byte, 0, len(Sizes))
	for _, s := range Sizes {
		var buf bytes.Buffer
		if err := png.Encode(&buf, imaging.Resize(src, s, s, imaging.Lanczos)); err != nil {
			return fmt.Errorf("encode %dx%d: %w", s, s, err)
		}
		payloads = append(payloads, buf.Bytes())
	}

	dir := icondir{ImageType: 1, NumImages: uint16(len(Sizes))}
	if err := binary.Write(w, binary.LittleEndian, dir); err != nil {
		return err
	}
	offset := uint32(6 + 16*len(Sizes))
	for i, s := range Sizes {
		ide := icondirentry{
			Width:        dimByte(s),
			Height:       dimByte(s),
			ColorPlanes:  1,
			BitsPerPixel: 32,
			SizeInBytes:  uint32(len(payloads[i])),
			Offset:       offset,
		}
		if err := binary.Write(w, binary.LittleEndian, ide); err != nil {
			return err
		}
		offset += ide.SizeInBytes
	}
	for _, p := range payloads {
		if _, err := w.Write(p); err != nil {
			return err
		}
	}
	return nil
}

func dimByte(v int) uint8 {
	if v >= 256 {
		return 0
	}
	return uint8(v)
}

// WriteFile re-encodes an existing raster into the container at path.
func WriteFile(path string, src image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, src); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
