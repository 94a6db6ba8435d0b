// Package artwork decodes downloaded species artwork and scales it to the
// fixed display size.
package artwork

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	DefaultWidth  = 330
	DefaultHeight = 330

	// MaxPixels bounds the decoded size of an image, whatever its encoded size.
	MaxPixels = 4096 * 4096
)

var (
	ErrEmptyImage    = errors.New("empty image data")
	ErrImageTooLarge = errors.New("image dimensions too large")
)

// Decode decodes PNG, JPEG, GIF or WebP data and returns the format name.
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyImage
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > MaxPixels/cfg.Height {
		return nil, "", fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// Resize scales img to exactly width x height.
func Resize(img image.Image, width, height int) *image.RGBA {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// Load decodes data and resizes it for display.
func Load(data []byte, width, height int) (image.Image, error) {
	img, _, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Resize(img, width, height), nil
}
