package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Preview sizing
const (
	PreviewMaxEdge           = 240
	PreviewMinWidth  float32 = 200
	PreviewMinHeight float32 = 160
)

// Status text
const (
	StatusLineSeparator = "\n"
)
