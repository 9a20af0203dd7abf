package download

import (
	"testing"

	"github.com/ytget/ytpro/internal/model"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"My:Video*Test", "MyVideoTest"},
		{`a\b/c*d?e:f"g<h>i|j`, "abcdefghij"},
		{"Plain title - part 1", "Plain title - part 1"},
		{"Émilie & Co.", "Émilie & Co."},
		{"", ""},
	}

	for _, test := range tests {
		result := SanitizeFilename(test.title)
		if result != test.expected {
			t.Errorf("SanitizeFilename(%q) = %q, expected %q", test.title, result, test.expected)
		}
	}
}

func TestOutputFilename(t *testing.T) {
	tests := []struct {
		title    string
		videoID  string
		format   model.Format
		expected string
	}{
		{"My:Video*Test", "abc", model.FormatMP3, "MyVideoTest.mp3"},
		{"My:Video*Test", "abc", model.FormatMP4, "MyVideoTest.mp4"},
		{"???", "dQw4w9WgXcQ", model.FormatMP4, "dQw4w9WgXcQ.mp4"},
		{"  ", "", model.FormatMP3, FallbackBaseName + ".mp3"},
	}

	for _, test := range tests {
		result := OutputFilename(test.title, test.videoID, test.format)
		if result != test.expected {
			t.Errorf("OutputFilename(%q, %q, %s) = %q, expected %q",
				test.title, test.videoID, test.format, result, test.expected)
		}
	}
}

func TestPlaylistFolder(t *testing.T) {
	tests := []struct {
		title    string
		id       string
		expected string
	}{
		{"Lo-Fi Beats!", "PL1", "lo-fi-beats"},
		{"My Playlist: Vol. 1", "PL1", "my-playlist-vol-1"},
		{"", "PLabc", "plabc"},
		{"***", "", FallbackPlaylistFolder},
	}

	for _, test := range tests {
		if result := PlaylistFolder(test.title, test.id); result != test.expected {
			t.Errorf("PlaylistFolder(%q, %q) = %q, expected %q", test.title, test.id, result, test.expected)
		}
	}
}
