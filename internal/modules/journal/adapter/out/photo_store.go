package out

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/nfnt/resize"
)

const (
	photoMaxDimension = 800
	photoJPEGQuality  = 70
)

// PhotoStore copies table photos into the data directory, downscaled so the
// store stays small. Everything is re-encoded as jpeg regardless of input
// format.
type PhotoStore struct {
	dir string
}

func NewPhotoStore(dir string) *PhotoStore {
	return &PhotoStore{dir: dir}
}

func (s *PhotoStore) Attach(_ context.Context, sourcePath string) (string, error) {
	source, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("open photo: %w", err)
	}
	defer source.Close()

	decoded, _, err := image.Decode(source)
	if err != nil {
		return "", fmt.Errorf("decode photo %s: %w", sourcePath, err)
	}
	scaled := resize.Thumbnail(photoMaxDimension, photoMaxDimension, decoded, resize.Lanczos3)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create photo dir: %w", err)
	}
	name := fmt.Sprintf("photo_%d.jpg", time.Now().UnixNano())
	target := filepath.Join(s.dir, name)

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	if err := jpeg.Encode(out, scaled, &jpeg.Options{Quality: photoJPEGQuality}); err != nil {
		out.Close()
		os.Remove(target)
		return "", fmt.Errorf("encode photo: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close photo file: %w", err)
	}
	return target, nil
}
