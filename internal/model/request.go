package model

import (
	"fmt"
	"strings"
)

// Quality is the requested video resolution label.
type Quality string

const (
	Quality144p  Quality = "144p"
	Quality240p  Quality = "240p"
	Quality360p  Quality = "360p"
	Quality480p  Quality = "480p"
	Quality720p  Quality = "720p"
	Quality1080p Quality = "1080p"
)

// Format is the requested output container.
type Format string

const (
	FormatMP4 Format = "MP4"
	FormatMP3 Format = "MP3"
)

// Defaults used by the form and the CLI
const (
	DefaultQuality = Quality720p
	DefaultFormat  = FormatMP4
)

// Qualities returns the selectable qualities in ascending order.
func Qualities() []Quality {
	return []Quality{Quality144p, Quality240p, Quality360p, Quality480p, Quality720p, Quality1080p}
}

// Formats returns the selectable formats.
func Formats() []Format {
	return []Format{FormatMP4, FormatMP3}
}

// ParseQuality accepts "720p", "720" or "720P".
func ParseQuality(s string) (Quality, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v != "" && !strings.HasSuffix(v, "p") {
		v += "p"
	}
	for _, q := range Qualities() {
		if string(q) == v {
			return q, nil
		}
	}
	return "", fmt.Errorf("unknown quality: %q", s)
}

// ParseFormat accepts the format name in any case.
func ParseFormat(s string) (Format, error) {
	v := Format(strings.ToUpper(strings.TrimSpace(s)))
	for _, f := range Formats() {
		if f == v {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format: %q", s)
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	if f == FormatMP3 {
		return ".mp3"
	}
	return ".mp4"
}

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}

// String returns the string representation of Quality
func (q Quality) String() string {
	return string(q)
}

// DownloadRequest is built from the form when the user clicks Download.
// It is passed by value to the worker and never modified afterwards.
type DownloadRequest struct {
	URL       string
	Quality   Quality
	Format    Format
	OutputDir string
}

// Normalized returns a copy with surrounding whitespace removed and empty
// quality/format replaced by the defaults.
func (r DownloadRequest) Normalized() DownloadRequest {
	r.URL = strings.TrimSpace(r.URL)
	r.OutputDir = strings.TrimSpace(r.OutputDir)
	if r.Quality == "" {
		r.Quality = DefaultQuality
	}
	if r.Format == "" {
		r.Format = DefaultFormat
	}
	return r
}
