package ui

import (
	"image/color"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 600
	WindowHeight float32 = 400
)

// Form sizing
const (
	CredentialFormWidth float32 = 360
	IdeaEntryWidth      float32 = 400
)

// Page backgrounds
var (
	CredentialPageBackground = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	IdeaPageBackground       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Icons (emojis/symbols)
const (
	IconSending = "⏳"
	IconCreated = "✅"
	IconError   = "❌"
	IconCancel  = "⏹"
)
