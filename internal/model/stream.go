package model

import (
	"strconv"
	"strings"
	"time"
)

// StreamDescriptor describes one downloadable stream reported by the source.
// The orchestrator only reads it.
type StreamDescriptor struct {
	Itag        int
	Resolution  string // e.g. "720p", empty for audio-only streams
	Extension   string // container subtype, e.g. "mp4" or "webm"
	MimeType    string
	Progressive bool // video and audio multiplexed together
	AudioOnly   bool
	Size        int64 // total size in bytes, 0 if unknown
	Bitrate     int
}

// ResolutionValue returns the numeric part of Resolution ("720p" -> 720),
// or 0 when there is none.
func (s StreamDescriptor) ResolutionValue() int {
	v := strings.TrimSuffix(s.Resolution, "p")
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// Video is what a source resolves a URL into.
type Video struct {
	ID       string
	Title    string
	Author   string
	Duration time.Duration
	Streams  []StreamDescriptor
}
