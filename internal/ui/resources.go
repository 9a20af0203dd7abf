package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "ytpro.png"
)

// LoadLogoResource loads the logo from file path. The icon is optional, so
// callers fall back to a text-only header when it is missing.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
