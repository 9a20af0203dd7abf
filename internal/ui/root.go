package ui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/ytpro/internal/config"
	"github.com/ytget/ytpro/internal/download"
	"github.com/ytget/ytpro/internal/logging"
	"github.com/ytget/ytpro/internal/model"
	"github.com/ytget/ytpro/internal/platform"
)

// Downloader starts downloads on background goroutines and streams their
// events. *download.Orchestrator implements it.
type Downloader interface {
	Start(ctx context.Context, req model.DownloadRequest) <-chan model.Event
	StartBatch(ctx context.Context, reqs []model.DownloadRequest) <-chan model.Event
}

// Services are the backends driven by the window
type Services struct {
	Downloader Downloader
	// Transcoder handles MP3 downloads when transcoding is enabled.
	// Nil when ffmpeg is not installed.
	Transcoder Downloader
	// Playlists is optional; without it every URL is a single video.
	Playlists download.PlaylistSource
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	services     Services
	logger       zerolog.Logger

	// dispatch runs a function on the UI goroutine, goFunc runs one in the
	// background, reveal opens a file manager. Tests replace all three.
	dispatch func(func())
	goFunc   func(func())
	reveal   func(string) error

	titleLabel    *widget.Label
	urlLabel      *widget.Label
	urlEntry      *widget.Entry
	qualityLabel  *widget.Label
	qualitySelect *widget.Select
	formatLabel   *widget.Label
	formatSelect  *widget.Select
	outputLabel   *widget.Label
	outputEntry   *widget.Entry
	browseBtn     *widget.Button
	downloadBtn   *widget.Button
	progressBar   *widget.ProgressBar
	busyBar       *widget.ProgressBarInfinite
	statusLabel   *widget.Label

	// generation identifies the download that owns the progress bar and
	// status line. Only read and written on the UI goroutine.
	generation int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, services Services) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		services:     services,
		logger:       logging.Component("ui"),
		dispatch:     fyne.Do,
		goFunc:       func(f func()) { go f() },
		reveal:       platform.RevealInFileManager,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.logger.Debug().Bool("transcoder", services.Transcoder != nil).
		Bool("playlists", services.Playlists != nil).Msg("main window ready")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.Alignment = fyne.TextAlignCenter
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	var header fyne.CanvasObject = ui.titleLabel
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, logoImage, nil, ui.titleLabel)
	}

	ui.urlLabel = widget.NewLabel("")
	ui.urlEntry = widget.NewEntry()
	// Enter in the URL field works like the Download button
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.qualityLabel = widget.NewLabel("")
	ui.qualitySelect = widget.NewSelect(qualityOptions(), nil)
	ui.qualitySelect.SetSelected(ui.settings.GetQuality().String())

	ui.formatLabel = widget.NewLabel("")
	ui.formatSelect = widget.NewSelect(formatOptions(), nil)
	ui.formatSelect.SetSelected(ui.settings.GetFormat().String())

	ui.outputLabel = widget.NewLabel("")
	ui.outputEntry = widget.NewEntry()
	ui.outputEntry.SetText(ui.settings.GetOutputDirectory())
	ui.browseBtn = widget.NewButton("", ui.onBrowseClick)

	ui.downloadBtn = widget.NewButton("", ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Max = 100
	// shown instead of the progress bar while no byte counts are known
	ui.busyBar = widget.NewProgressBarInfinite()
	ui.busyBar.Stop()
	ui.busyBar.Hide()

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	options := container.New(layout.NewFormLayout(),
		ui.qualityLabel, ui.qualitySelect,
		ui.formatLabel, ui.formatSelect,
	)
	output := container.NewBorder(nil, nil, nil, ui.browseBtn, ui.outputEntry)

	content := container.NewVBox(
		header,
		widget.NewSeparator(),
		ui.urlLabel,
		ui.urlEntry,
		options,
		ui.outputLabel,
		output,
		layout.NewSpacer(),
		container.NewStack(ui.progressBar, ui.busyBar),
		ui.downloadBtn,
		ui.statusLabel,
	)

	ui.refreshUITexts()
	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText

	ui.window.SetTitle(t(KeyAppTitle))
	ui.titleLabel.SetText(t(KeyAppTitle))
	ui.urlLabel.SetText(t(KeyURLLabel))
	ui.urlEntry.SetPlaceHolder(t(KeyEnterURL))
	ui.qualityLabel.SetText(t(KeyQuality))
	ui.formatLabel.SetText(t(KeyFormat))
	ui.outputLabel.SetText(t(KeyOutputDirectory))
	ui.browseBtn.SetText(t(KeyBrowse))
	ui.downloadBtn.SetText(t(KeyDownload))
}

// statusTexts returns the localized status line templates
func (ui *RootUI) statusTexts() download.StatusTexts {
	t := ui.localization.GetText
	return download.StatusTexts{
		Resolving:      t(KeyStatusResolving),
		DownloadingFmt: t(KeyStatusDownloading),
		ConvertingFmt:  t(KeyStatusConverting),
		Completed:      t(KeyStatusCompleted),
		Failed:         t(KeyStatusFailed),
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.services.Transcoder != nil, ui.applySettings)
}

// applySettings reloads the form after the settings dialog saved
func (ui *RootUI) applySettings() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	ui.qualitySelect.SetSelected(ui.settings.GetQuality().String())
	ui.formatSelect.SetSelected(ui.settings.GetFormat().String())
	ui.outputEntry.SetText(ui.settings.GetOutputDirectory())
}

// onBrowseClick lets the user pick the output directory
func (ui *RootUI) onBrowseClick() {
	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if uri == nil {
			return
		}
		ui.outputEntry.SetText(uri.Path())
	}, ui.window)

	if dir := strings.TrimSpace(ui.outputEntry.Text); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			folderDialog.SetLocation(lister)
		}
	}
	folderDialog.Show()
}

// request builds the download request from the form
func (ui *RootUI) request() model.DownloadRequest {
	return model.DownloadRequest{
		URL:       ui.urlEntry.Text,
		Quality:   model.Quality(ui.qualitySelect.Selected),
		Format:    model.Format(ui.formatSelect.Selected),
		OutputDir: ui.outputEntry.Text,
	}.Normalized()
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	req := ui.request()
	if err := download.Validate(req); err != nil {
		ui.showError(err)
		return
	}
	ui.rememberChoices(req)

	if ui.services.Playlists != nil && ui.services.Playlists.IsPlaylistURL(req.URL) {
		dialog.ShowConfirm(
			ui.localization.GetText(KeyPlaylistTitle),
			ui.localization.GetText(KeyPlaylistConfirm),
			func(all bool) {
				if all {
					ui.startPlaylist(req)
					return
				}
				ui.startSingle(req)
			},
			ui.window,
		)
		return
	}

	ui.startSingle(req)
}

// rememberChoices stores the form values as next start's defaults
func (ui *RootUI) rememberChoices(req model.DownloadRequest) {
	ui.settings.SetOutputDirectory(req.OutputDir)
	if q, err := model.ParseQuality(req.Quality.String()); err == nil {
		ui.settings.SetQuality(q)
	}
	if f, err := model.ParseFormat(req.Format.String()); err == nil {
		ui.settings.SetFormat(f)
	}
}

// downloaderFor picks the transcoding backend for MP3 when it is enabled
func (ui *RootUI) downloaderFor(req model.DownloadRequest) Downloader {
	if req.Format == model.FormatMP3 && ui.settings.GetTranscodeAudio() && ui.services.Transcoder != nil {
		return ui.services.Transcoder
	}
	return ui.services.Downloader
}

// startSingle downloads one video
func (ui *RootUI) startSingle(req model.DownloadRequest) {
	ui.logger.Info().Str("url", req.URL).Str("quality", req.Quality.String()).
		Str("format", req.Format.String()).Msg("starting download")
	generation := ui.beginJob()
	ui.relay(generation, ui.downloaderFor(req).Start(context.Background(), req))
}

// startPlaylist expands the playlist in the background, then downloads its
// entries one after another
func (ui *RootUI) startPlaylist(req model.DownloadRequest) {
	generation := ui.beginJob()
	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText(ui.localization.GetText(KeyParsingPlaylist))
	downloader := ui.downloaderFor(req)

	ui.goFunc(func() {
		playlist, err := ui.services.Playlists.ParsePlaylist(context.Background(), req.URL)
		if err != nil {
			ui.logger.Error().Err(err).Str("url", req.URL).Msg("playlist parsing failed")
			reporter := download.NewReporter(ui.newSink(generation), ui.dispatch, ui.statusTexts())
			reporter.Handle(model.Event{Kind: model.EventFailed, URL: req.URL, Err: &download.LibraryError{Err: err}})
			return
		}

		ui.logger.Info().Str("playlist", playlist.ID).Int("videos", playlist.Len()).Msg("playlist parsed")
		events := downloader.StartBatch(context.Background(), playlist.Requests(req))
		ui.dispatch(func() {
			ui.relay(generation, events)
		})
	})
}

// beginJob makes the next download the owner of the progress widgets
func (ui *RootUI) beginJob() int {
	ui.generation++
	return ui.generation
}

// relay drains events in the background and applies them on the UI goroutine
func (ui *RootUI) relay(generation int, events <-chan model.Event) {
	reporter := download.NewReporter(ui.newSink(generation), ui.dispatch, ui.statusTexts())
	ui.goFunc(func() {
		reporter.Relay(events)
	})
}

// showError shows err in a modal dialog
func (ui *RootUI) showError(err error) {
	dialog.ShowError(errors.New(ui.errorText(err)), ui.window)
}

// errorText returns the message shown for err in the current language
func (ui *RootUI) errorText(err error) string {
	t := ui.localization.GetText

	var libErr *download.LibraryError
	switch {
	case err == nil:
		return t(KeyStatusFailed)
	case errors.Is(err, download.ErrEmptyURL):
		return t(KeyErrEmptyURL)
	case errors.Is(err, download.ErrEmptyOutputDir):
		return t(KeyErrEmptyOutputDir)
	case errors.Is(err, download.ErrNoSuitableStream):
		return t(KeyErrNoStream)
	case errors.As(err, &libErr) && libErr.Err != nil:
		return fmt.Sprintf(t(KeyErrLibrary), libErr.Err)
	default:
		return capitalize(err.Error())
	}
}

// revealIfEnabled opens the file manager at path when the setting is on
func (ui *RootUI) revealIfEnabled(path string) {
	if path == "" || !ui.settings.GetRevealOnComplete() {
		return
	}
	if err := ui.reveal(path); err != nil {
		ui.logger.Warn().Err(err).Str("path", path).Msg("failed to reveal file")
	}
}

func (ui *RootUI) newSink(generation int) *formSink {
	return &formSink{ui: ui, generation: generation}
}

// formSink applies one download's events to the form. Progress and status
// from a download that is no longer the latest are dropped; its dialogs are
// still shown.
type formSink struct {
	ui         *RootUI
	generation int
	succeeded  int
	failures   []string
}

func (s *formSink) current() bool {
	return s.generation == s.ui.generation
}

func (s *formSink) SetState(status model.Status) {
	if !s.current() {
		return
	}
	busy := status == model.StatusResolving || status == model.StatusConverting
	if busy == s.ui.busyBar.Visible() {
		return
	}
	if busy {
		s.ui.progressBar.Hide()
		s.ui.busyBar.Show()
		s.ui.busyBar.Start()
		return
	}
	s.ui.busyBar.Stop()
	s.ui.busyBar.Hide()
	s.ui.progressBar.Show()
}

func (s *formSink) SetProgress(percent float64) {
	if s.current() {
		s.ui.progressBar.SetValue(percent)
	}
}

func (s *formSink) SetStatus(text string) {
	if s.current() {
		s.ui.statusLabel.SetText(text)
	}
}

func (s *formSink) Succeeded(ev model.Event) {
	s.succeeded++
	s.ui.revealIfEnabled(ev.Path)

	if ev.Total > 0 {
		s.finishBatch(ev)
		return
	}

	t := s.ui.localization.GetText
	s.ui.app.SendNotification(fyne.NewNotification(t(KeyStatusCompleted), ev.Title))
	dialog.ShowInformation(t(KeySuccess), t(KeyStatusCompleted), s.ui.window)
}

func (s *formSink) Failed(ev model.Event) {
	if ev.Total > 0 {
		s.failures = append(s.failures, fmt.Sprintf("%s: %s", entryName(ev), s.ui.errorText(ev.Err)))
		s.finishBatch(ev)
		return
	}
	s.ui.showError(ev.Err)
}

// finishBatch shows the summary once the last playlist entry is done. With
// failures it is an error dialog listing them.
func (s *formSink) finishBatch(ev model.Event) {
	if ev.Index < ev.Total {
		return
	}
	t := s.ui.localization.GetText
	if len(s.failures) == 0 {
		dialog.ShowInformation(t(KeyPlaylistTitle), fmt.Sprintf(t(KeyPlaylistFinished), s.succeeded, 0), s.ui.window)
		return
	}
	dialog.ShowError(errors.New(s.batchSummary()), s.ui.window)
}

// batchSummary returns the playlist result followed by up to
// MaxListedFailures failed entries
func (s *formSink) batchSummary() string {
	t := s.ui.localization.GetText

	var b strings.Builder
	fmt.Fprintf(&b, t(KeyPlaylistFinished), s.succeeded, len(s.failures))
	b.WriteString("\n\n" + t(KeyPlaylistFailures))
	for i, failure := range s.failures {
		if i == MaxListedFailures {
			fmt.Fprintf(&b, "\n+%d", len(s.failures)-MaxListedFailures)
			break
		}
		b.WriteString("\n" + failure)
	}
	return b.String()
}

// entryName identifies a playlist entry in the failure list
func entryName(ev model.Event) string {
	switch {
	case ev.Title != "":
		return download.ShortTitle(ev.Title, download.MaxStatusTitleRunes)
	case ev.URL != "":
		return ev.URL
	default:
		return fmt.Sprintf("#%d", ev.Index)
	}
}

// capitalize upper-cases the first letter of an error message for display
func capitalize(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
