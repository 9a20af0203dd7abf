package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/ytpro/internal/config"
	"github.com/ytget/ytpro/internal/model"
)

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("test")
	settings := config.NewSettings(app)

	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), window, true, func() { saved = true })
	sd.loadCurrentSettings()

	sd.outputDirEntry.SetText("/tmp/music")
	sd.qualitySelect.SetSelected("360p")
	sd.formatSelect.SetSelected("MP3")
	sd.transcodeCheck.SetChecked(true)
	sd.revealCheck.SetChecked(true)
	sd.languageSelect.SetSelected("pt")
	sd.save()

	if !saved {
		t.Error("Expected onSaved to be called")
	}
	if settings.GetOutputDirectory() != "/tmp/music" {
		t.Errorf("Unexpected output directory %s", settings.GetOutputDirectory())
	}
	if settings.GetQuality() != model.Quality360p || settings.GetFormat() != model.FormatMP3 {
		t.Errorf("Unexpected quality/format %s/%s", settings.GetQuality(), settings.GetFormat())
	}
	if !settings.GetTranscodeAudio() || !settings.GetRevealOnComplete() {
		t.Error("Expected toggles to be saved")
	}
	if settings.GetLanguage() != "pt" {
		t.Errorf("Unexpected language %s", settings.GetLanguage())
	}
}

func TestSettingsDialog_TranscodeDisabledWithoutFFmpeg(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("test")

	sd := NewSettingsDialog(config.NewSettings(app), NewLocalization(), window, false, nil)

	if !sd.transcodeCheck.Disabled() {
		t.Error("Transcode option must be disabled without ffmpeg")
	}
}

func TestAppTheme(t *testing.T) {
	th := NewAppTheme()

	if th.Color(theme.ColorNamePrimary, theme.VariantDark) != colorPrimary {
		t.Error("Expected the blue accent as primary color")
	}
	if th.Size(theme.SizeNameInnerPadding) != 10 {
		t.Errorf("Unexpected inner padding %v", th.Size(theme.SizeNameInnerPadding))
	}
}
