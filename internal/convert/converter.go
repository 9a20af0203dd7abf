package convert

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ytget/ytpro/internal/logging"
)

// FFmpeg constants for MP3 encoding
const (
	AudioCodec   = "libmp3lame"
	AudioBitrate = "192k"

	// Executable and I/O constants
	FFmpegCommand       = "ffmpeg"
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"
	ProgressPipeTarget  = "pipe:2"
	ProgressTimePrefix  = "out_time_us="
	MicrosecondsPerSec  = 1000000.0
)

// ErrFFmpegNotFound is returned when ffmpeg is not on PATH
var ErrFFmpegNotFound = errors.New("ffmpeg not found in PATH")

// FFmpegConverter runs ffmpeg to produce MP3 files
type FFmpegConverter struct {
	ffmpegPath  string
	ffprobePath string
	logger      zerolog.Logger
}

// NewFFmpegConverter locates ffmpeg and ffprobe on PATH. ffprobe is optional;
// without it no progress is reported.
func NewFFmpegConverter() (*FFmpegConverter, error) {
	ffmpegPath, err := exec.LookPath(FFmpegCommand)
	if err != nil {
		return nil, ErrFFmpegNotFound
	}
	ffprobePath, _ := exec.LookPath(FFprobeCommand)
	return &FFmpegConverter{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		logger:      logging.Component("convert"),
	}, nil
}

// ToMP3 encodes inputPath into outputPath. onProgress receives the encoded
// fraction in [0, 1]. A partial output is removed on failure.
func (c *FFmpegConverter) ToMP3(ctx context.Context, inputPath, outputPath string, onProgress func(fraction float64)) error {
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file does not exist: %w", err)
	}

	duration := 0.0
	if c.ffprobePath != "" {
		d, err := c.probeDuration(ctx, inputPath)
		if err != nil {
			c.logger.Debug().Err(err).Str("input", inputPath).Msg("duration unknown, progress disabled")
		} else {
			duration = d
		}
	}

	cmd := exec.CommandContext(ctx, c.ffmpegPath, BuildFFmpegArgs(inputPath, outputPath)...)
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	monitorProgress(stderr, duration, onProgress)

	if err := cmd.Wait(); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	if onProgress != nil {
		onProgress(1)
	}
	return nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments
func BuildFFmpegArgs(inputPath, outputPath string) []string {
	return []string{
		"-y",            // Overwrite output file
		"-i", inputPath, // Input file
		"-vn",              // Drop any video track
		"-c:a", AudioCodec, // Audio codec
		"-b:a", AudioBitrate, // Audio bitrate
		"-progress", ProgressPipeTarget, // Progress to stderr
		"-nostats", // No stats output
		outputPath, // Output file
	}
}

// probeDuration gets the duration of a media file in seconds using ffprobe
func (c *FFmpegConverter) probeDuration(ctx context.Context, filePath string) (float64, error) {
	cmd := exec.CommandContext(ctx, c.ffprobePath, "-v", FFprobeLogLevel, "-show_entries", FFprobeShowEntries, "-of", FFprobeOutputFormat, filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}
	return parseDuration(string(output))
}

// parseDuration parses ffprobe's duration output
func parseDuration(output string) (float64, error) {
	duration, err := strconv.ParseFloat(strings.TrimSpace(output), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}
	return duration, nil
}

// monitorProgress reads ffmpeg progress lines until r is exhausted
func monitorProgress(r io.Reader, totalDuration float64, onProgress func(float64)) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fraction, ok := parseProgressLine(scanner.Text(), totalDuration)
		if ok && onProgress != nil {
			onProgress(fraction)
		}
	}
}

// parseProgressLine parses "out_time_us=123456" into a fraction of totalDuration
func parseProgressLine(line string, totalDuration float64) (float64, bool) {
	line = strings.TrimSpace(line)
	if totalDuration <= 0 || !strings.HasPrefix(line, ProgressTimePrefix) {
		return 0, false
	}

	timeMicroseconds, err := strconv.ParseInt(strings.TrimPrefix(line, ProgressTimePrefix), 10, 64)
	if err != nil || timeMicroseconds < 0 {
		return 0, false
	}

	progress := float64(timeMicroseconds) / MicrosecondsPerSec / totalDuration
	if progress > 1.0 {
		progress = 1.0
	}
	return progress, true
}
