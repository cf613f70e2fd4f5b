package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/gift"
	"gocv.io/x/gocv"
)

// FrameStore persists grabbed frames.
type FrameStore interface {
	Save(path string, img image.Image) error
}

// DiskStore writes images with the OpenCV encoder picked by file extension.
type DiskStore struct{}

// NewDiskStore creates a disk-backed frame store.
func NewDiskStore() *DiskStore {
	return &DiskStore{}
}

// Save encodes img to path, creating the parent directory when missing.
func (s *DiskStore) Save(path string, img image.Image) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrWriteFailed)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create frame directory: %w", err)
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return fmt.Errorf("failed to convert frame: %w", err)
	}
	defer mat.Close()

	if !gocv.IMWrite(path, mat) {
		return fmt.Errorf("%w: %s", ErrWriteFailed, path)
	}
	return nil
}

// Load decodes an image file.
func Load(path string) (image.Image, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrDecodeFailed, path)
	}
	return mat.ToImage()
}

// Thumbnail scales img by factor, keeping the aspect ratio.
func Thumbnail(img image.Image, factor float64) (image.Image, error) {
	if factor <= 0 || factor > 1 {
		return nil, ErrInvalidThumbScale
	}
	width := int(float64(img.Bounds().Dx()) * factor)
	if width < 1 {
		width = 1
	}

	g := gift.New(gift.Resize(width, 0, gift.LinearResampling))
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst, nil
}
