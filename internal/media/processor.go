package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

const (
	DefaultMaxWidth = 1200
	MaxUploadBytes  = 8 << 20
)

var (
	ErrTooLarge     = errors.New("image too large")
	ErrInvalidImage = errors.New("invalid image")
)

// Normalize decodes a JPEG, PNG, BMP or WebP image, scales it down to
// maxWidth keeping the aspect ratio, and re-encodes it as lossy WebP.
func Normalize(r io.Reader, maxWidth int) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(raw) > MaxUploadBytes {
		return nil, ErrTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", ErrInvalidImage, err)
	}

	img := resize(src, maxWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func resize(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
