package config

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/ytpro/internal/model"
	"github.com/ytget/ytpro/internal/platform"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default is the Downloads directory
	dir := settings.GetOutputDirectory()
	if dir == "" {
		t.Fatal("Output directory should not be empty")
	}
	if expected, err := platform.DownloadsDir(); err == nil && dir != expected {
		t.Errorf("Expected default %s, got %s", expected, dir)
	}

	customDir := filepath.Join("custom", "downloads")
	settings.SetOutputDirectory(customDir)

	if got := settings.GetOutputDirectory(); got != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, got)
	}
}

func TestQuality(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if q := settings.GetQuality(); q != model.DefaultQuality {
		t.Errorf("Expected default quality %s, got %s", model.DefaultQuality, q)
	}

	settings.SetQuality(model.Quality1080p)
	if q := settings.GetQuality(); q != model.Quality1080p {
		t.Errorf("Expected quality %s, got %s", model.Quality1080p, q)
	}

	// Garbage in preferences falls back to the default
	app.Preferences().SetString(KeyQuality, "8k")
	if q := settings.GetQuality(); q != model.DefaultQuality {
		t.Errorf("Expected fallback quality %s, got %s", model.DefaultQuality, q)
	}
}

func TestFormat(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if f := settings.GetFormat(); f != model.DefaultFormat {
		t.Errorf("Expected default format %s, got %s", model.DefaultFormat, f)
	}

	settings.SetFormat(model.FormatMP3)
	if f := settings.GetFormat(); f != model.FormatMP3 {
		t.Errorf("Expected format %s, got %s", model.FormatMP3, f)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Expected language 'en', got %s", lang)
	}
}

func TestToggles(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetTranscodeAudio() != DefaultTranscodeAudio {
		t.Error("Unexpected transcode default")
	}
	if settings.GetRevealOnComplete() != DefaultRevealOnComplete {
		t.Error("Unexpected reveal default")
	}

	settings.SetTranscodeAudio(true)
	settings.SetRevealOnComplete(true)
	if !settings.GetTranscodeAudio() || !settings.GetRevealOnComplete() {
		t.Error("Expected toggles to be stored")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
