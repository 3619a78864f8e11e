package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	path := writeTestPNG(t, img)

	src, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src.Width != 3 || src.Height != 2 {
		t.Errorf("dimensions %dx%d, want 3x2", src.Width, src.Height)
	}

	px := src.Pixels()
	if len(px) != 6 {
		t.Fatalf("got %d pixels, want 6", len(px))
	}
	if px[0].R != 255 || px[0].G != 0 || px[0].B != 0 {
		t.Errorf("pixel 0 = %+v, want red", px[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPixelsFlattenTransparency(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{0, 0, 0, 0})     // fully transparent
	img.Set(1, 0, color.NRGBA{0, 0, 0, 128})   // half transparent black

	src := &Source{Image: img, Width: 2, Height: 1}
	px := src.Pixels()

	if px[0].R != 255 || px[0].G != 255 || px[0].B != 255 {
		t.Errorf("transparent pixel = %+v, want white", px[0])
	}
	// Half-transparent black over white reads as mid gray.
	if px[1].R < 120 || px[1].R > 135 {
		t.Errorf("half-transparent black = %+v, want mid gray", px[1])
	}
}

func TestResize(t *testing.T) {
	tests := []struct {
		name           string
		w, h, maxDim   int
		wantW, wantH   int
	}{
		{name: "within bound unchanged", w: 100, h: 50, maxDim: 200, wantW: 100, wantH: 50},
		{name: "wide image", w: 800, h: 400, maxDim: 200, wantW: 200, wantH: 100},
		{name: "tall image", w: 300, h: 600, maxDim: 200, wantW: 100, wantH: 200},
		{name: "zero uses default cap", w: 800, h: 800, maxDim: 0, wantW: MaxGridDimension, wantH: MaxGridDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &Source{
				Image:  image.NewRGBA(image.Rect(0, 0, tt.w, tt.h)),
				Width:  tt.w,
				Height: tt.h,
			}
			got := src.Resize(tt.maxDim)
			if got.Width != tt.wantW || got.Height != tt.wantH {
				t.Errorf("resized to %dx%d, want %dx%d", got.Width, got.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestIsSupportedFormat(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photo.png", true},
		{"PHOTO.JPG", true},
		{"scan.tiff", true},
		{"icon.bmp", true},
		{"doc.pdf", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsSupportedFormat(tt.path); got != tt.want {
			t.Errorf("IsSupportedFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
