package convert

// Package convert transcodes downloaded audio streams to MP3 with ffmpeg,
// reporting progress from ffmpeg's -progress output.
