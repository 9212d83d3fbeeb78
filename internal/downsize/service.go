package downsize

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"
)

// Quality ladder settings
const (
	// StartQuality is the JPEG quality of the first re-encode attempt
	StartQuality = 95

	// QualityStep is subtracted from the quality on each attempt
	QualityStep = 5

	// MinQuality is the floor; the attempt at this quality is kept even
	// if the result is still over budget
	MinQuality = 5

	// TempFilePattern names the temporary file written next to the original
	TempFilePattern = ".downsize-*.jpg"
)

// Service re-encodes JPEG files to fit under a byte budget
type Service struct{}

// NewService creates a new downsize service
func NewService() *Service {
	return &Service{}
}

// Downsize shrinks the JPEG at path below maxBytes by re-encoding it at
// decreasing quality, overwriting the file in place. Files already at or
// under the budget are left untouched. The re-encoded bytes land in a
// temporary file in the same directory and replace the original with a
// rename, so a crash mid-write never corrupts the source image.
func (s *Service) Downsize(path string, maxBytes int64) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat image: %w", err)
	}
	if info.Size() <= maxBytes {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	img, err := jpeg.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	var buf bytes.Buffer
	quality := StartQuality
	for {
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("failed to re-encode %s at quality %d: %w", path, quality, err)
		}
		if int64(buf.Len()) <= maxBytes || quality <= MinQuality {
			break
		}
		quality -= QualityStep
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), TempFilePattern)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace original image: %w", err)
	}

	log.Printf("Downsized %s: %d -> %d bytes at quality %d", path, info.Size(), buf.Len(), quality)
	return nil
}
