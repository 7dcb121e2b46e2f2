package imagefile

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 8 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "food.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write png: %v", err)
	}
	return path
}

func TestReadProducesJPEG(t *testing.T) {
	path := writeTestPNG(t, 320, 240)

	data, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not jpeg: %v", err)
	}
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 240 {
		t.Fatalf("small image was resized: %v", img.Bounds())
	}
}

func TestReadDownscalesLargeImages(t *testing.T) {
	path := writeTestPNG(t, 4000, 3000)

	data, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w > 1280 || h > 1280 {
		t.Fatalf("long edge not clamped: %dx%d", w, h)
	}
	if w != 1280 {
		t.Fatalf("long edge = %d, want 1280", w)
	}
	// Aspect ratio preserved (4:3).
	if h != 960 {
		t.Fatalf("short edge = %d, want 960", h)
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.jpg")); err == nil {
		t.Fatal("missing file did not error")
	}

	notImage := filepath.Join(t.TempDir(), "notes.jpg")
	if err := os.WriteFile(notImage, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := Read(notImage); err == nil {
		t.Fatal("non-image file did not error")
	}
}

func TestEncodeBase64RoundTrip(t *testing.T) {
	if got := EncodeBase64([]byte("hello")); got != "aGVsbG8=" {
		t.Fatalf("EncodeBase64 = %q", got)
	}
}
