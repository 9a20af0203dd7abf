package platform

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/kkdai/youtube/v2"

	"github.com/ytget/ytpro/internal/model"
)

// MIME top-level types
const (
	MimeTypeAudio = "audio"
	MimeTypeVideo = "video"
)

// resolutionLabel matches the height part of labels like "720p60" or "1080p HDR"
var resolutionLabel = regexp.MustCompile(`^(\d+)p`)

// YouTubeSource resolves videos and opens streams with github.com/kkdai/youtube.
type YouTubeSource struct {
	client *youtube.Client

	// resolved videos by ID, kept until opened or released
	videos      map[string]*youtube.Video
	videosMutex sync.Mutex
}

// NewYouTubeSource creates a source with a default client
func NewYouTubeSource() *YouTubeSource {
	return NewYouTubeSourceWithClient(&youtube.Client{})
}

// NewYouTubeSourceWithClient creates a source around an existing client,
// e.g. one with a custom HTTP client
func NewYouTubeSourceWithClient(client *youtube.Client) *YouTubeSource {
	return &YouTubeSource{
		client: client,
		videos: make(map[string]*youtube.Video),
	}
}

// Resolve fetches the video metadata and its stream descriptors
func (s *YouTubeSource) Resolve(ctx context.Context, url string) (*model.Video, error) {
	video, err := s.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to get video info: %w", err)
	}

	s.videosMutex.Lock()
	s.videos[video.ID] = video
	s.videosMutex.Unlock()

	return convertVideo(video), nil
}

// Open starts the transfer of the stream with the descriptor's itag
func (s *YouTubeSource) Open(ctx context.Context, video *model.Video, stream model.StreamDescriptor) (io.ReadCloser, int64, error) {
	s.videosMutex.Lock()
	ytVideo, ok := s.videos[video.ID]
	delete(s.videos, video.ID)
	s.videosMutex.Unlock()

	if !ok {
		var err error
		ytVideo, err = s.client.GetVideoContext(ctx, video.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to get video info: %w", err)
		}
	}

	format := findFormat(ytVideo.Formats, stream.Itag)
	if format == nil {
		return nil, 0, fmt.Errorf("stream with itag %d is no longer available", stream.Itag)
	}

	body, size, err := s.client.GetStreamContext(ctx, ytVideo, format)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open stream: %w", err)
	}
	return body, size, nil
}

// Release drops the cached metadata of a resolved video. Open releases it
// too, so this only matters for videos whose stream is never opened.
func (s *YouTubeSource) Release(videoID string) {
	s.videosMutex.Lock()
	delete(s.videos, videoID)
	s.videosMutex.Unlock()
}

// findFormat returns the format with the given itag, or nil
func findFormat(formats youtube.FormatList, itag int) *youtube.Format {
	for i := range formats {
		if formats[i].ItagNo == itag {
			return &formats[i]
		}
	}
	return nil
}

// convertVideo maps library metadata to the domain model
func convertVideo(v *youtube.Video) *model.Video {
	streams := make([]model.StreamDescriptor, 0, len(v.Formats))
	for _, f := range v.Formats {
		streams = append(streams, convertFormat(f))
	}
	return &model.Video{
		ID:       v.ID,
		Title:    v.Title,
		Author:   v.Author,
		Duration: v.Duration,
		Streams:  streams,
	}
}

// convertFormat builds a stream descriptor from a library format
func convertFormat(f youtube.Format) model.StreamDescriptor {
	mediaType, subtype := splitMimeType(f.MimeType)
	isVideo := mediaType == MimeTypeVideo

	resolution := ""
	if isVideo {
		resolution = parseResolution(f.QualityLabel, f.Height)
	}

	return model.StreamDescriptor{
		Itag:        f.ItagNo,
		Resolution:  resolution,
		Extension:   subtype,
		MimeType:    f.MimeType,
		Progressive: isVideo && f.AudioChannels > 0,
		AudioOnly:   mediaType == MimeTypeAudio,
		Size:        int64(f.ContentLength),
		Bitrate:     f.Bitrate,
	}
}

// splitMimeType turns `video/mp4; codecs="avc1"` into ("video", "mp4")
func splitMimeType(mimeType string) (string, string) {
	base, _, _ := strings.Cut(mimeType, ";")
	mediaType, subtype, found := strings.Cut(strings.TrimSpace(base), "/")
	if !found {
		return strings.ToLower(mediaType), ""
	}
	return strings.ToLower(mediaType), strings.ToLower(subtype)
}

// parseResolution returns "720p" for label "720p60"; height is used when the
// label has no resolution
func parseResolution(qualityLabel string, height int) string {
	if m := resolutionLabel.FindStringSubmatch(qualityLabel); m != nil {
		return m[1] + "p"
	}
	if height > 0 {
		return fmt.Sprintf("%dp", height)
	}
	return ""
}
