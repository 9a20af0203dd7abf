package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytpro/internal/config"
	"github.com/ytget/ytpro/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	outputDirEntry  *widget.Entry
	qualitySelect   *widget.Select
	formatSelect    *widget.Select
	transcodeCheck  *widget.Check
	revealCheck     *widget.Check
	languageSelect  *widget.Select
	ffmpegAvailable bool
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been stored and may be nil.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, ffmpegAvailable bool, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:        settings,
		localization:    localization,
		window:          window,
		onSaved:         onSaved,
		ffmpegAvailable: ffmpegAvailable,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, ffmpegAvailable bool, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, ffmpegAvailable, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.outputDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)

	sd.qualitySelect = widget.NewSelect(qualityOptions(), nil)
	sd.formatSelect = widget.NewSelect(formatOptions(), nil)

	sd.transcodeCheck = widget.NewCheck(t(KeyTranscodeAudio), nil)
	if !sd.ffmpegAvailable {
		sd.transcodeCheck.Disable()
	}
	sd.revealCheck = widget.NewCheck(t(KeyRevealOnComplete), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := widget.NewForm(
		widget.NewFormItem(t(KeyOutputDirectory), outputDirRow),
		widget.NewFormItem(t(KeyQuality), sd.qualitySelect),
		widget.NewFormItem(t(KeyFormat), sd.formatSelect),
		widget.NewFormItem(t(KeyLanguage), sd.languageSelect),
	)
	content := container.NewVBox(form, widget.NewSeparator(), sd.transcodeCheck, sd.revealCheck)
	if !sd.ffmpegAvailable {
		hint := widget.NewLabel(t(KeyFFmpegMissing))
		hint.Wrapping = fyne.TextWrapWord
		content.Add(hint)
	}

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		content,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(DialogWidth, DialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.qualitySelect.SetSelected(sd.settings.GetQuality().String())
	sd.formatSelect.SetSelected(sd.settings.GetFormat().String())
	sd.transcodeCheck.SetChecked(sd.settings.GetTranscodeAudio())
	sd.revealCheck.SetChecked(sd.settings.GetRevealOnComplete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save stores the dialog values; invalid or empty values are ignored
func (sd *SettingsDialog) save() {
	if sd.outputDirEntry.Text != "" {
		sd.settings.SetOutputDirectory(sd.outputDirEntry.Text)
	}
	if q, err := model.ParseQuality(sd.qualitySelect.Selected); err == nil {
		sd.settings.SetQuality(q)
	}
	if f, err := model.ParseFormat(sd.formatSelect.Selected); err == nil {
		sd.settings.SetFormat(f)
	}
	sd.settings.SetTranscodeAudio(sd.transcodeCheck.Checked)
	sd.settings.SetRevealOnComplete(sd.revealCheck.Checked)
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

func qualityOptions() []string {
	options := make([]string, 0, len(model.Qualities()))
	for _, q := range model.Qualities() {
		options = append(options, q.String())
	}
	return options
}

func formatOptions() []string {
	options := make([]string, 0, len(model.Formats()))
	for _, f := range model.Formats() {
		options = append(options, f.String())
	}
	return options
}
