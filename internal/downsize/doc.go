package downsize

// Package downsize shrinks oversized JPEG files in place by walking a
// quality ladder until the re-encoded image fits under a byte budget. It
// also produces small in-memory thumbnails for the UI preview.
