package downsize

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"github.com/anthonynsimon/bild/transform"
)

// Thumbnail decodes the JPEG at path and scales it down so the longer edge
// is at most maxEdge pixels, preserving aspect ratio. Images already small
// enough are returned as decoded.
func (s *Service) Thumbnail(path string, maxEdge int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxEdge && h <= maxEdge {
		return img, nil
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	return transform.Resize(img, w, h, transform.Linear), nil
}
