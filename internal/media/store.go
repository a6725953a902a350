package media

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
)

type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// Store normalizes catalog images and uploads them under a per-kind prefix.
type Store struct {
	uploader Uploader
	maxWidth int
}

func NewStore(uploader Uploader, maxWidth int) *Store {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	return &Store{uploader: uploader, maxWidth: maxWidth}
}

// SaveImage returns the public URL of the stored WebP.
func (s *Store) SaveImage(ctx context.Context, kind string, r io.Reader) (string, error) {
	body, err := Normalize(r, s.maxWidth)
	if err != nil {
		return "", err
	}

	key := path.Join(kind, uuid.NewString()+".webp")
	return s.uploader.Upload(ctx, key, "image/webp", body)
}

// DeleteImage removes an object previously returned by SaveImage.
func (s *Store) DeleteImage(ctx context.Context, imageURL string) error {
	key, err := keyFromURL(imageURL)
	if err != nil {
		return err
	}
	return s.uploader.Delete(ctx, key)
}

// keyFromURL recovers "<kind>/<name>.webp" from the public URL.
func keyFromURL(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("parse image url: %w", err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || !strings.HasSuffix(parts[len(parts)-1], ".webp") {
		return "", fmt.Errorf("not a stored image: %s", imageURL)
	}
	return path.Join(parts[len(parts)-2:]...), nil
}
