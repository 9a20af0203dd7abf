package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/ytpro/internal/logging"
	"github.com/ytget/ytpro/internal/model"
)

// Transfer settings
const (
	DefaultChunkSize = 256 * 1024
	EventBufferSize  = 64
	PartialSuffix    = ".part"
	AudioTempSuffix  = ".audio"
	JobIDPrefix      = "job-"
	DirPermissions   = 0755
)

// Result describes a finished download
type Result struct {
	JobID   string
	Video   *model.Video
	Stream  model.StreamDescriptor
	Path    string
	Bytes   int64
	Skipped bool
}

// Orchestrator runs downloads: validate, resolve, select, transfer.
type Orchestrator struct {
	source    Source
	converter Converter
	tagger    Tagger
	chunkSize int
	logger    zerolog.Logger
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithConverter enables MP3 transcoding of audio downloads
func WithConverter(c Converter) Option {
	return func(o *Orchestrator) {
		o.converter = c
	}
}

// WithTagger writes ID3 tags into transcoded MP3 files
func WithTagger(t Tagger) Option {
	return func(o *Orchestrator) {
		o.tagger = t
	}
}

// withChunkSize sets the read size; one progress event is emitted per read
func withChunkSize(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// withLogger replaces the component logger
func withLogger(l zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = l
	}
}

// NewOrchestrator creates an orchestrator reading streams from source
func NewOrchestrator(source Source, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		source:    source,
		chunkSize: DefaultChunkSize,
		logger:    logging.Component("download"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Validate checks the fields a download cannot start without
func Validate(req model.DownloadRequest) error {
	if strings.TrimSpace(req.URL) == "" {
		return ErrEmptyURL
	}
	if strings.TrimSpace(req.OutputDir) == "" {
		return ErrEmptyOutputDir
	}
	return nil
}

// Start runs the download on a new goroutine. The returned channel receives
// every event of the download and is closed after the terminal one.
func (o *Orchestrator) Start(ctx context.Context, req model.DownloadRequest) <-chan model.Event {
	events := make(chan model.Event, EventBufferSize)
	jobID := generateJobID()
	go func() {
		defer close(events)
		_, _ = o.run(ctx, jobID, req, 0, 0, events)
	}()
	return events
}

// StartBatch downloads reqs one after another on a single goroutine. A failed
// item emits its Failed event and the batch moves on to the next one.
func (o *Orchestrator) StartBatch(ctx context.Context, reqs []model.DownloadRequest) <-chan model.Event {
	events := make(chan model.Event, EventBufferSize)
	jobID := generateJobID()
	go func() {
		defer close(events)
		failed := 0
		for i, req := range reqs {
			if ctx.Err() != nil {
				break
			}
			if _, err := o.run(ctx, jobID, req, i+1, len(reqs), events); err != nil {
				failed++
			}
		}
		o.logger.Info().Str("job", jobID).Int("total", len(reqs)).Int("failed", failed).Msg("batch finished")
	}()
	return events
}

// Download runs one download on the calling goroutine. Events are sent to
// events when it is non-nil; the caller must keep draining it.
func (o *Orchestrator) Download(ctx context.Context, req model.DownloadRequest, events chan<- model.Event) (*Result, error) {
	return o.run(ctx, generateJobID(), req, 0, 0, events)
}

// run performs a single download and always emits exactly one terminal event
func (o *Orchestrator) run(ctx context.Context, jobID string, req model.DownloadRequest, index, total int, events chan<- model.Event) (*Result, error) {
	req = req.Normalized()
	logger := o.logger.With().Str("job", jobID).Str("url", req.URL).Logger()

	emit := func(ev model.Event) {
		if events == nil {
			return
		}
		ev.JobID = jobID
		ev.URL = req.URL
		ev.Index = index
		ev.Total = total
		events <- ev
	}
	fail := func(title string, err error) (*Result, error) {
		logger.Error().Err(err).Msg("download failed")
		emit(model.Event{Kind: model.EventFailed, Title: title, Err: err})
		return nil, err
	}

	if err := Validate(req); err != nil {
		return fail("", err)
	}

	emit(model.Event{Kind: model.EventResolving})
	if err := os.MkdirAll(req.OutputDir, DirPermissions); err != nil {
		return fail("", &LibraryError{Err: fmt.Errorf("failed to create output directory: %w", err)})
	}

	video, err := o.source.Resolve(ctx, req.URL)
	if err != nil {
		return fail("", &LibraryError{Err: err})
	}
	if r, ok := o.source.(Releaser); ok {
		defer r.Release(video.ID)
	}
	logger.Debug().Str("title", video.Title).Int("streams", len(video.Streams)).Msg("video resolved")

	stream, err := SelectStream(req, video.Streams)
	if err != nil {
		return fail(video.Title, err)
	}
	logger.Debug().Int("itag", stream.Itag).Str("resolution", stream.Resolution).
		Bool("audio_only", stream.AudioOnly).Int64("size", stream.Size).Msg("stream selected")

	path := filepath.Join(req.OutputDir, OutputFilename(video.Title, video.ID, req.Format))
	result := &Result{JobID: jobID, Video: video, Stream: stream, Path: path}

	if existingMatches(path, stream.Size) {
		logger.Info().Str("path", path).Msg("file already downloaded, skipping")
		result.Skipped = true
		result.Bytes = stream.Size
		emit(model.Event{
			Kind:     model.EventSkipped,
			Title:    video.Title,
			Path:     path,
			Progress: model.Progress{BytesDownloaded: stream.Size, TotalBytes: stream.Size},
		})
		return result, nil
	}

	convert := req.Format == model.FormatMP3 && o.converter != nil
	target := path
	if convert {
		target = strings.TrimSuffix(path, filepath.Ext(path)) + AudioTempSuffix + "." + stream.Extension
	}

	emit(model.Event{Kind: model.EventStarted, Title: video.Title})
	started := time.Now()
	written, err := o.transfer(ctx, video, stream, target, func(p model.Progress) {
		emit(model.Event{Kind: model.EventProgress, Title: video.Title, Progress: p})
	})
	if err != nil {
		return fail(video.Title, &LibraryError{Err: err})
	}
	result.Bytes = written

	if convert {
		emit(model.Event{Kind: model.EventConverting, Title: video.Title})
		err := o.converter.ToMP3(ctx, target, path, func(fraction float64) {
			logger.Debug().Float64("fraction", fraction).Msg("converting")
		})
		os.Remove(target)
		if err != nil {
			return fail(video.Title, &LibraryError{Err: fmt.Errorf("failed to convert to mp3: %w", err)})
		}
		if o.tagger != nil {
			if err := o.tagger.Tag(path, video); err != nil {
				logger.Warn().Err(err).Str("path", path).Msg("failed to write tags")
			}
		}
	}

	logger.Info().Str("path", path).Int64("bytes", written).Dur("took", time.Since(started)).Msg("download completed")
	emit(model.Event{
		Kind:     model.EventCompleted,
		Title:    video.Title,
		Path:     path,
		Progress: model.Progress{BytesDownloaded: written, TotalBytes: written},
	})
	return result, nil
}

// transfer copies the stream into path via a ".part" file, reporting progress
// after every chunk. A body shorter than the announced size is an error; when
// the size is unknown or exceeded, the last report is written/written.
func (o *Orchestrator) transfer(ctx context.Context, video *model.Video, stream model.StreamDescriptor, path string, report func(model.Progress)) (int64, error) {
	body, size, err := o.source.Open(ctx, video, stream)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	total := stream.Size
	if size > 0 {
		total = size
	}

	partPath := path + PartialSuffix
	f, err := os.Create(partPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}

	written, err := copyChunks(ctx, f, body, make([]byte, o.chunkSize), func(n int64) {
		report(model.Progress{BytesDownloaded: n, TotalBytes: total})
	})
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close output file: %w", closeErr)
	}
	if err == nil && total > 0 && written < total {
		err = fmt.Errorf("stream ended after %d of %d bytes: %w", written, total, io.ErrUnexpectedEOF)
	}
	if err != nil {
		os.Remove(partPath)
		return written, err
	}

	if err := os.Rename(partPath, path); err != nil {
		os.Remove(partPath)
		return written, fmt.Errorf("failed to move output file into place: %w", err)
	}

	if total != written {
		report(model.Progress{BytesDownloaded: written, TotalBytes: written})
	}
	return written, nil
}

// copyChunks copies src to dst one buffer at a time and calls onChunk with
// the running byte count after each write
func copyChunks(ctx context.Context, dst io.Writer, src io.Reader, buf []byte, onChunk func(int64)) (int64, error) {
	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		nr, rerr := src.Read(buf)
		if nr > 0 {
			nw, werr := dst.Write(buf[:nr])
			written += int64(nw)
			if werr != nil {
				return written, fmt.Errorf("failed to write output file: %w", werr)
			}
			if nw != nr {
				return written, io.ErrShortWrite
			}
			onChunk(written)
		}
		if errors.Is(rerr, io.EOF) {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}

// existingMatches reports whether path exists with exactly size bytes
func existingMatches(path string, size int64) bool {
	if size <= 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Size() == size
}

// generateJobID generates a time-ordered job ID
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
