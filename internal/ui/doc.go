// Package ui contains the Fyne-based desktop user interface for the application.
// It builds the download form, starts downloads on background goroutines and
// applies their events on the UI goroutine. All UI strings are localized via
// Localization.
package ui
