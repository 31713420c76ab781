package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	VideoWindowWidth  float32 = 600
	VideoWindowHeight float32 = 250

	AudioWindowWidth  float32 = 600
	AudioWindowHeight float32 = 280
)

// Layout sizing
const (
	DirLabelMaxChars = 60
)
