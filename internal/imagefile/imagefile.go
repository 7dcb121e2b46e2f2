package imagefile

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"image/jpeg"

	xdraw "golang.org/x/image/draw"
)

// Capture parameters. The long edge and quality mirror a phone-camera
// capture: plenty for the estimator, small enough to embed in the log.
const (
	maxEdge     = 1280
	jpegQuality = 85
)

// Extensions lists the file types the acquire view offers.
var Extensions = []string{".jpg", ".jpeg", ".png"}

// Read loads an image file, downscales it so the long edge is at most
// 1280 px, and returns it re-encoded as JPEG. Any unreadable or
// undecodable file is an acquisition error; the caller keeps the
// acquire view open so the user can pick another file.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeBase64 returns the wire/storage form of a captured image.
func EncodeBase64(jpegData []byte) string {
	return base64.StdEncoding.EncodeToString(jpegData)
}

func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	long := w
	if h > long {
		long = h
	}
	if long <= maxEdge {
		return img
	}

	scale := float64(maxEdge) / float64(long)
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
