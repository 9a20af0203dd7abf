package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/ytpro/internal/model"
	"github.com/ytget/ytpro/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir        = "output_directory"
	KeyQuality          = "default_quality"
	KeyFormat           = "default_format"
	KeyLanguage         = "app_language"
	KeyTranscodeAudio   = "transcode_audio"
	KeyRevealOnComplete = "reveal_on_complete"
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultTranscodeAudio   = false
	DefaultRevealOnComplete = false
	FallbackOutputDir       = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the last used output directory, defaulting to
// the user's Downloads directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		defaultDir, err := platform.DownloadsDir()
		if err != nil {
			defaultDir = FallbackOutputDir
		}
		return defaultDir
	}
	return dir
}

// SetOutputDirectory remembers the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetQuality returns the preselected quality
func (s *Settings) GetQuality() model.Quality {
	q, err := model.ParseQuality(s.app.Preferences().String(KeyQuality))
	if err != nil {
		return model.DefaultQuality
	}
	return q
}

// SetQuality sets the preselected quality
func (s *Settings) SetQuality(q model.Quality) {
	s.app.Preferences().SetString(KeyQuality, q.String())
}

// GetFormat returns the preselected format
func (s *Settings) GetFormat() model.Format {
	f, err := model.ParseFormat(s.app.Preferences().String(KeyFormat))
	if err != nil {
		return model.DefaultFormat
	}
	return f
}

// SetFormat sets the preselected format
func (s *Settings) SetFormat(f model.Format) {
	s.app.Preferences().SetString(KeyFormat, f.String())
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetTranscodeAudio returns whether MP3 downloads are re-encoded with ffmpeg
func (s *Settings) GetTranscodeAudio() bool {
	return s.app.Preferences().BoolWithFallback(KeyTranscodeAudio, DefaultTranscodeAudio)
}

// SetTranscodeAudio sets whether MP3 downloads are re-encoded with ffmpeg
func (s *Settings) SetTranscodeAudio(enabled bool) {
	s.app.Preferences().SetBool(KeyTranscodeAudio, enabled)
}

// GetRevealOnComplete returns whether to reveal completed downloads
func (s *Settings) GetRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnComplete, DefaultRevealOnComplete)
}

// SetRevealOnComplete sets whether to reveal completed downloads
func (s *Settings) SetRevealOnComplete(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnComplete, reveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
