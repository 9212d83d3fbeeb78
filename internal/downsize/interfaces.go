package downsize

import "image"

// Downsizer defines the interface for the downsize service.
type Downsizer interface {
	Downsize(path string, maxBytes int64) error
	Thumbnail(path string, maxEdge int) (image.Image, error)
}
