package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ytget/ytpro/internal/download"
	"github.com/ytget/ytpro/internal/model"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent float64
		filled  int
		label   string
	}{
		{0, 0, "0.0%"},
		{50, 5, "50.0%"},
		{100, 10, "100.0%"},
		{150, 10, "100.0%"},
		{-5, 0, "0.0%"},
	}

	for _, tt := range tests {
		bar := ProgressBar(tt.percent, 10)
		if got := strings.Count(bar, StyleSymbols["hline"]); got != tt.filled {
			t.Errorf("ProgressBar(%v): expected %d filled cells, got %d", tt.percent, tt.filled, got)
		}
		if !strings.Contains(bar, tt.label) {
			t.Errorf("ProgressBar(%v): expected label %s in %q", tt.percent, tt.label, bar)
		}
	}
}

func replay(events ...model.Event) <-chan model.Event {
	ch := make(chan model.Event, len(events))
	for _, ev := range events {
		ch <- ev
	}
	close(ch)
	return ch
}

func TestTerminal_Success(t *testing.T) {
	var buf bytes.Buffer
	out := newTerminal(&buf)

	err := out.run(replay(
		model.Event{Kind: model.EventStarted, Title: "Clip"},
		model.Event{Kind: model.EventProgress, Progress: model.Progress{BytesDownloaded: 25, TotalBytes: 100}},
		model.Event{Kind: model.EventProgress, Progress: model.Progress{BytesDownloaded: 27, TotalBytes: 100}},
		model.Event{Kind: model.EventProgress, Progress: model.Progress{BytesDownloaded: 100, TotalBytes: 100}},
		model.Event{Kind: model.EventCompleted, Path: "/tmp/Clip.mp4"},
	))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	text := buf.String()
	for _, want := range []string{"Downloading: Clip...", download.DefaultCompletedText, "Saved /tmp/Clip.mp4"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in output:\n%s", want, text)
		}
	}
	// 0%, 25% and 100% are printed, 27% shares the step of 25%
	if got := strings.Count(text, "%\n"); got != 3 {
		t.Errorf("Expected 3 progress lines, got %d:\n%s", got, text)
	}
	if out.interactive {
		t.Error("A buffer is never interactive")
	}
}

func TestTerminal_Skipped(t *testing.T) {
	var buf bytes.Buffer
	out := newTerminal(&buf)

	if err := out.run(replay(model.Event{Kind: model.EventSkipped, Path: "/tmp/Clip.mp4"})); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Already downloaded /tmp/Clip.mp4") {
		t.Errorf("Unexpected output:\n%s", buf.String())
	}
}

func TestTerminal_Failures(t *testing.T) {
	var buf bytes.Buffer
	out := newTerminal(&buf)

	err := out.run(replay(
		model.Event{Kind: model.EventFailed, URL: "https://youtu.be/a", Err: &download.LibraryError{Err: errors.New("private video")}, Index: 1, Total: 2},
		model.Event{Kind: model.EventCompleted, Path: "/tmp/b.mp4", Index: 2, Total: 2},
	))
	if !errors.Is(err, ErrDownloadsFailed) {
		t.Fatalf("Expected ErrDownloadsFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("Expected failure count in %q", err.Error())
	}

	text := buf.String()
	if !strings.Contains(text, "[1/2] "+download.DefaultFailedText) {
		t.Errorf("Expected prefixed failed status in output:\n%s", text)
	}
	if !strings.Contains(text, "an error occurred: private video (https://youtu.be/a)") {
		t.Errorf("Expected error message in output:\n%s", text)
	}
}
