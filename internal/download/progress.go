package download

import (
	"fmt"

	"github.com/ytget/ytpro/internal/model"
)

// Status text defaults
const (
	DefaultResolvingText  = "Fetching video info..."
	DefaultDownloadingFmt = "Downloading: %s..."
	DefaultConvertingFmt  = "Converting to MP3: %s..."
	DefaultCompletedText  = "Download completed successfully!"
	DefaultFailedText     = "Download failed"
	MaxStatusTitleRunes   = 50
	BatchPrefixFmt        = "[%d/%d] "
)

// StatusTexts holds the status line templates, so the GUI can localize them
type StatusTexts struct {
	Resolving      string
	DownloadingFmt string // receives the shortened title
	ConvertingFmt  string // receives the shortened title
	Completed      string
	Failed         string
}

// DefaultStatusTexts returns the English status texts
func DefaultStatusTexts() StatusTexts {
	return StatusTexts{
		Resolving:      DefaultResolvingText,
		DownloadingFmt: DefaultDownloadingFmt,
		ConvertingFmt:  DefaultConvertingFmt,
		Completed:      DefaultCompletedText,
		Failed:         DefaultFailedText,
	}
}

// Reporter applies worker events to a Sink. All sink calls go through
// dispatch, which in the GUI runs them on the UI goroutine.
type Reporter struct {
	sink     Sink
	dispatch func(func())
	texts    StatusTexts
}

// NewReporter creates a reporter. A nil dispatch calls the sink directly.
func NewReporter(sink Sink, dispatch func(func()), texts StatusTexts) *Reporter {
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return &Reporter{sink: sink, dispatch: dispatch, texts: texts}
}

// Relay drains events until the channel is closed. It is meant to run on its
// own goroutine, one per started download.
func (r *Reporter) Relay(events <-chan model.Event) {
	for ev := range events {
		r.Handle(ev)
	}
}

// Handle applies a single event
func (r *Reporter) Handle(ev model.Event) {
	prefix := ""
	if ev.Total > 0 {
		prefix = fmt.Sprintf(BatchPrefixFmt, ev.Index, ev.Total)
	}
	status := ev.Status()
	apply := func(f func()) {
		r.dispatch(func() {
			r.sink.SetState(status)
			f()
		})
	}

	switch ev.Kind {
	case model.EventResolving:
		apply(func() {
			r.sink.SetProgress(0)
			r.sink.SetStatus(prefix + r.texts.Resolving)
		})
	case model.EventStarted:
		text := prefix + fmt.Sprintf(r.texts.DownloadingFmt, ShortTitle(ev.Title, MaxStatusTitleRunes))
		apply(func() {
			r.sink.SetProgress(0)
			r.sink.SetStatus(text)
		})
	case model.EventProgress:
		percent := ev.Progress.Percent()
		apply(func() {
			r.sink.SetProgress(percent)
		})
	case model.EventConverting:
		text := prefix + fmt.Sprintf(r.texts.ConvertingFmt, ShortTitle(ev.Title, MaxStatusTitleRunes))
		apply(func() {
			r.sink.SetStatus(text)
		})
	case model.EventCompleted, model.EventSkipped:
		apply(func() {
			r.sink.SetProgress(100)
			r.sink.SetStatus(prefix + r.texts.Completed)
			r.sink.Succeeded(ev)
		})
	case model.EventFailed:
		libraryFailure := IsLibraryFailure(ev.Err)
		apply(func() {
			if libraryFailure {
				r.sink.SetStatus(prefix + r.texts.Failed)
			}
			r.sink.Failed(ev)
		})
	}
}

// ShortTitle cuts title to at most limit runes
func ShortTitle(title string, limit int) string {
	runes := []rune(title)
	if len(runes) <= limit {
		return title
	}
	return string(runes[:limit])
}
