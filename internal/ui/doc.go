package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires folder selection to the batch service and renders
// status text, progress, a preview of the image in flight, and the settings
// dialog. All UI strings go through Localization.
