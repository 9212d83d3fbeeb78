package platform

import (
	"fmt"

	exiftool "github.com/barasher/go-exiftool"
)

// EXIF tag read for context enrichment
const (
	ExifDescriptionTag = "ImageDescription"
)

// ExifReader extracts descriptive EXIF tags through a long-lived exiftool
// process. Construction fails when the exiftool binary is not installed;
// callers treat that as "no enrichment available".
type ExifReader struct {
	et *exiftool.Exiftool
}

// NewExifReader starts the exiftool process
func NewExifReader() (*ExifReader, error) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("failed to start exiftool: %w", err)
	}
	return &ExifReader{et: et}, nil
}

// Describe returns the ImageDescription tag of the file, or an empty string
// when the tag is absent.
func (r *ExifReader) Describe(path string) (string, error) {
	metas := r.et.ExtractMetadata(path)
	if len(metas) == 0 {
		return "", nil
	}
	if metas[0].Err != nil {
		return "", metas[0].Err
	}

	desc, err := metas[0].GetString(ExifDescriptionTag)
	if err != nil {
		// Absent tag, not a failure
		return "", nil
	}
	return desc, nil
}

// Close shuts the exiftool process down
func (r *ExifReader) Close() error {
	return r.et.Close()
}
