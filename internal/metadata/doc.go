package metadata

// Package metadata talks to the PhotoTag.ai keywords API: it derives a
// context hint from the image filename, downsizes the file under the upload
// ceiling, posts it as multipart form data, and parses the returned title,
// description, and keywords.
