package download

import (
	"context"
	"io"

	"github.com/ytget/ytpro/internal/model"
)

// Source resolves video URLs into stream descriptors and opens the bytes of
// a chosen stream. The YouTube implementation lives in internal/platform.
type Source interface {
	Resolve(ctx context.Context, url string) (*model.Video, error)
	// Open returns the stream body and its size in bytes (0 if unknown).
	Open(ctx context.Context, video *model.Video, stream model.StreamDescriptor) (io.ReadCloser, int64, error)
}

// Releaser is implemented by sources that hold per-video state between
// Resolve and Open. The orchestrator calls Release once it is done with a
// resolved video, whether or not its stream was opened.
type Releaser interface {
	Release(videoID string)
}

// Converter transcodes a downloaded audio file into MP3.
type Converter interface {
	ToMP3(ctx context.Context, inputPath, outputPath string, onProgress func(fraction float64)) error
}

// Tagger writes metadata into a finished MP3 file.
type Tagger interface {
	Tag(path string, video *model.Video) error
}

// PlaylistSource expands a playlist URL into its entries.
type PlaylistSource interface {
	IsPlaylistURL(url string) bool
	ParsePlaylist(ctx context.Context, url string) (*model.Playlist, error)
}

// Sink displays download state. Every call is made through the dispatcher
// given to the Reporter, so GUI sinks may touch widgets directly.
type Sink interface {
	// SetState is called before every other update with the state the
	// event moves the download into.
	SetState(status model.Status)
	SetProgress(percent float64)
	SetStatus(text string)
	Succeeded(ev model.Event)
	Failed(ev model.Event)
}
