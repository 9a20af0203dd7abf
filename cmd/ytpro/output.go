package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/ytget/ytpro/internal/download"
	"github.com/ytget/ytpro/internal/model"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("37"))            // dark green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))             // red
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))            // blue
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))           // light grey
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")) // purple
)

var StyleSymbols = map[string]string{
	"pass":    "✓",
	"fail":    "✗",
	"pending": "◉",
	"bullet":  "•",
	"hline":   "━",
}

const (
	progressBarWidth = 30
	// non-interactive output prints one progress line per step
	progressStep = 10
)

// ErrDownloadsFailed is returned when at least one download failed
var ErrDownloadsFailed = errors.New("encountered failed download(s)")

func FError(text string) string {
	return errorStyle.Render(text)
}

// ProgressBar renders percent as a fixed-width bar
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		width = progressBarWidth
	}
	percent = max(0, min(percent, 100))
	filled := max(0, min(int(percent/100*float64(width)), width))
	bar := StyleSymbols["bullet"]
	bar += strings.Repeat(StyleSymbols["hline"], filled)
	if filled < width {
		bar += strings.Repeat(" ", width-filled)
	}
	bar += StyleSymbols["bullet"]
	return debugStyle.Render(fmt.Sprintf("%s %5.1f%%", bar, percent))
}

// terminal is the download.Sink of the CLI. On a TTY the progress bar is
// redrawn in place; otherwise it prints one line per progressStep percent.
type terminal struct {
	out         io.Writer
	interactive bool

	lineOpen  bool
	lastStep  int
	succeeded int
	failed    int
}

func newTerminal(out io.Writer) *terminal {
	interactive := false
	if f, ok := out.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &terminal{out: out, interactive: interactive, lastStep: -1}
}

// run applies events until the channel closes
func (t *terminal) run(events <-chan model.Event) error {
	download.NewReporter(t, nil, download.DefaultStatusTexts()).Relay(events)
	t.closeLine()
	if t.failed > 0 {
		if t.succeeded+t.failed > 1 {
			return fmt.Errorf("%w: %d of %d", ErrDownloadsFailed, t.failed, t.succeeded+t.failed)
		}
		return ErrDownloadsFailed
	}
	return nil
}

func (t *terminal) header(text string) {
	t.closeLine()
	fmt.Fprintln(t.out, headerStyle.Render(text))
}

func (t *terminal) pending(text string) {
	t.closeLine()
	fmt.Fprintln(t.out, pendingStyle.Render(StyleSymbols["pending"]+" "+text))
}

func (t *terminal) SetState(status model.Status) {
	if status.IsFinished() {
		t.closeLine()
	}
}

func (t *terminal) SetProgress(percent float64) {
	if t.interactive {
		fmt.Fprintf(t.out, "\r%s", ProgressBar(percent, progressBarWidth))
		t.lineOpen = true
		return
	}

	step := int(percent) / progressStep
	if step < t.lastStep {
		t.lastStep = -1
	}
	if step > t.lastStep {
		t.lastStep = step
		fmt.Fprintln(t.out, ProgressBar(percent, progressBarWidth))
	}
}

func (t *terminal) SetStatus(text string) {
	t.pending(text)
}

func (t *terminal) Succeeded(ev model.Event) {
	t.succeeded++
	t.closeLine()
	verb := "Saved"
	if ev.Kind == model.EventSkipped {
		verb = "Already downloaded"
	}
	fmt.Fprintln(t.out, successStyle.Render(fmt.Sprintf("%s %s %s", StyleSymbols["pass"], verb, ev.Path)))
}

func (t *terminal) Failed(ev model.Event) {
	t.failed++
	t.closeLine()
	msg := "download failed"
	if ev.Err != nil {
		msg = ev.Err.Error()
	}
	if ev.URL != "" {
		msg += " (" + ev.URL + ")"
	}
	fmt.Fprintln(t.out, errorStyle.Render(StyleSymbols["fail"]+" "+msg))
}

// closeLine ends an in-place progress line
func (t *terminal) closeLine() {
	if t.lineOpen {
		fmt.Fprintln(t.out)
		t.lineOpen = false
	}
}
