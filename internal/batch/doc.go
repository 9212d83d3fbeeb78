package batch

// Package batch implements the folder processing pipeline: it enumerates
// the JPEG work list, drives the metadata client per image, writes the
// image_metadata.csv output, and reports progress to the UI through an
// update callback. A run executes on its own goroutine so the window never
// blocks on the network.
