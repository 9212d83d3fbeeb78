package model

// MetadataResult holds the title, description, and keywords returned by the
// keywords API for a single image. The zero value is the empty result.
type MetadataResult struct {
	Title       string
	Description string
	Keywords    []string
}

// IsUsable reports whether the result is complete enough for a CSV row:
// a non-empty title and at least one keyword.
func (m MetadataResult) IsUsable() bool {
	return m.Title != "" && len(m.Keywords) > 0
}
