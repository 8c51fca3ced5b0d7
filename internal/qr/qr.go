// Package qr encodes vehicle plates into QR code images and decodes such
// images back into plate strings. One PNG per vehicle lives under the qr/
// subdirectory of the data dir, created on registration and removed on
// deletion.
package qr

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	goqrcode "github.com/skip2/go-qrcode"
)

// ErrNoCode is returned by Decode when the image holds no readable QR code.
var ErrNoCode = errors.New("no QR code found in image")

// DirName is the QR image subdirectory under the data dir.
const DirName = "qr"

// imageSize is the edge length in pixels of generated PNGs.
const imageSize = 256

// Dir returns the QR image directory for a data dir.
func Dir(dataDir string) string {
	return filepath.Join(dataDir, DirName)
}

// ImagePath returns the image path for a plate inside dir.
func ImagePath(dir, plate string) string {
	return filepath.Join(dir, "QR_"+plate+".png")
}

// Encode writes a QR code PNG holding exactly the plate string, with error
// correction level low, and returns the image path. Re-encoding the same
// plate overwrites the prior image.
func Encode(dir, plate string) (string, error) {
	if plate == "" {
		return "", fmt.Errorf("encode: plate must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating qr dir: %w", err)
	}
	path := ImagePath(dir, plate)
	if err := goqrcode.WriteFile(plate, goqrcode.Low, imageSize, path); err != nil {
		return "", fmt.Errorf("writing qr image: %w", err)
	}
	return path, nil
}

// Decode reads the image at path and returns the text of the single QR code
// it contains. Arbitrary uploaded content is tolerated: anything that is not
// a decodable image with a recognizable code yields ErrNoCode, never a panic.
func Decode(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoCode, err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoCode, err)
	}

	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoCode, err)
	}
	return result.GetText(), nil
}
