package model

import "testing"

func TestParseQuality(t *testing.T) {
	tests := []struct {
		input    string
		expected Quality
		wantErr  bool
	}{
		{"720p", Quality720p, false},
		{"720", Quality720p, false},
		{" 1080P ", Quality1080p, false},
		{"144p", Quality144p, false},
		{"4k", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := ParseQuality(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseQuality(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			continue
		}
		if result != test.expected {
			t.Errorf("ParseQuality(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("mp3"); err != nil || f != FormatMP3 {
		t.Errorf("ParseFormat(mp3) = %s, %v", f, err)
	}
	if f, err := ParseFormat("MP4"); err != nil || f != FormatMP4 {
		t.Errorf("ParseFormat(MP4) = %s, %v", f, err)
	}
	if _, err := ParseFormat("flac"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestFormat_Extension(t *testing.T) {
	if FormatMP3.Extension() != ".mp3" {
		t.Errorf("Expected .mp3, got %s", FormatMP3.Extension())
	}
	if FormatMP4.Extension() != ".mp4" {
		t.Errorf("Expected .mp4, got %s", FormatMP4.Extension())
	}
}

func TestDownloadRequest_Normalized(t *testing.T) {
	req := DownloadRequest{URL: "  https://youtu.be/x \n", OutputDir: " /tmp "}
	n := req.Normalized()

	if n.URL != "https://youtu.be/x" {
		t.Errorf("Expected trimmed URL, got %q", n.URL)
	}
	if n.OutputDir != "/tmp" {
		t.Errorf("Expected trimmed dir, got %q", n.OutputDir)
	}
	if n.Quality != DefaultQuality || n.Format != DefaultFormat {
		t.Errorf("Expected defaults, got %s/%s", n.Quality, n.Format)
	}
	// Original is a value and must be untouched
	if req.URL != "  https://youtu.be/x \n" {
		t.Error("Normalized must not modify the receiver")
	}
}

func TestStreamDescriptor_ResolutionValue(t *testing.T) {
	tests := []struct {
		resolution string
		expected   int
	}{
		{"720p", 720},
		{"1080p", 1080},
		{"", 0},
		{"tiny", 0},
	}

	for _, test := range tests {
		s := StreamDescriptor{Resolution: test.resolution}
		if got := s.ResolutionValue(); got != test.expected {
			t.Errorf("ResolutionValue(%q) = %d, expected %d", test.resolution, got, test.expected)
		}
	}
}

func TestProgress_Percent(t *testing.T) {
	tests := []struct {
		p        Progress
		expected float64
	}{
		{Progress{0, 100}, 0},
		{Progress{50, 200}, 25},
		{Progress{200, 200}, 100},
		{Progress{300, 200}, 100},
		{Progress{10, 0}, 0},
	}

	for _, test := range tests {
		if got := test.p.Percent(); got != test.expected {
			t.Errorf("Percent(%+v) = %v, expected %v", test.p, got, test.expected)
		}
	}
}

func TestPlaylist_Requests(t *testing.T) {
	p := NewPlaylist("PL1", "https://www.youtube.com/playlist?list=PL1")
	p.AddEntry(&PlaylistEntry{VideoID: "a", URL: "https://www.youtube.com/watch?v=a"})
	p.AddEntry(&PlaylistEntry{VideoID: "b", URL: "https://www.youtube.com/watch?v=b"})
	p.AddEntry(&PlaylistEntry{VideoID: "a", URL: "https://www.youtube.com/watch?v=a"})

	if p.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", p.Len())
	}

	base := DownloadRequest{Quality: Quality360p, Format: FormatMP3, OutputDir: "/out"}
	reqs := p.Requests(base)
	if len(reqs) != 2 {
		t.Fatalf("Expected 2 requests, got %d", len(reqs))
	}
	if reqs[1].URL != "https://www.youtube.com/watch?v=b" || reqs[1].Format != FormatMP3 || reqs[1].OutputDir != "/out" {
		t.Errorf("Unexpected request: %+v", reqs[1])
	}
}
