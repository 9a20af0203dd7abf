package ui

import "fyne.io/fyne/v2"

// Window sizing
const (
	WindowWidth  float32 = 720
	WindowHeight float32 = 520
)

// Layout sizing
const (
	LogoSize     float32 = 32
	DialogWidth  float32 = 480
	DialogHeight float32 = 320
)

// MaxListedFailures caps the failed playlist entries named in the summary
const MaxListedFailures = 10

// WindowSize returns the fixed main window size
func WindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}
