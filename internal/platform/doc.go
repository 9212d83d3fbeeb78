package platform

// Package platform contains OS/filesystem integration: JPEG folder
// enumeration, EXIF extraction via the exiftool binary, and revealing the
// output CSV in the system file manager.
