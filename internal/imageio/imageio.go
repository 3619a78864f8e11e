// Package imageio provides image loading and pre-processing for pattern
// conversion: decoding, alpha flattening, and bounded downscaling.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"stitch-mapper/pkg/colorlab"
)

// MaxGridDimension caps the stitch grid size a loaded image is reduced to.
// One pixel becomes one stitch, so anything larger is unworkable fabric.
const MaxGridDimension = 400

// Source is a decoded image ready for conversion into a stitch grid.
type Source struct {
	Path   string
	Image  image.Image
	Width  int
	Height int
}

// Load decodes an image from the specified path.
func Load(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	b := img.Bounds()
	return &Source{
		Path:   path,
		Image:  img,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// Resize scales the source so that neither dimension exceeds maxDim,
// preserving aspect ratio. Images already within the bound are returned
// unchanged. A maxDim of zero or less applies MaxGridDimension.
func (s *Source) Resize(maxDim int) *Source {
	if maxDim <= 0 {
		maxDim = MaxGridDimension
	}
	if s.Width <= maxDim && s.Height <= maxDim {
		return s
	}

	w, h := s.Width, s.Height
	if w >= h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), s.Image, s.Image.Bounds(), draw.Over, nil)

	return &Source{
		Path:   s.Path,
		Image:  dst,
		Width:  w,
		Height: h,
	}
}

// Pixels flattens the image into a row-major RGB buffer. Transparent and
// partially transparent pixels are composited onto a white background, the
// way they would read against fabric.
func (s *Source) Pixels() []colorlab.RGB {
	out := make([]colorlab.RGB, 0, s.Width*s.Height)
	b := s.Image.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, flattenOnWhite(s.Image.At(x, y)))
		}
	}
	return out
}

// flattenOnWhite composites a possibly-transparent color onto white.
func flattenOnWhite(c color.Color) colorlab.RGB {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return colorlab.RGB{R: 255, G: 255, B: 255}
	}
	if a == 0xFFFF {
		return colorlab.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	}
	// RGBA returns alpha-premultiplied values, so blending with white only
	// needs the missing alpha share added back.
	gap := 0xFFFF - a
	return colorlab.RGB{
		R: uint8((r + gap) >> 8),
		G: uint8((g + gap) >> 8),
		B: uint8((b + gap) >> 8),
	}
}

// SupportedFormats returns the list of supported image formats.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
