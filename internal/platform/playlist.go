package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/ytpro/internal/model"
)

// Timeout constants
const (
	DefaultPlaylistParseTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam     = "list"
	PlaylistParamExpr = PlaylistParam + "="
	ParamSeparator    = "&"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Playlist title constants
const (
	DefaultPlaylistName = "Unknown Playlist"
	MinPrefixLength     = 10
	PlaylistSuffix      = " Playlist"
)

// PlaylistParser expands YouTube playlists using github.com/ytget/ytdlp
type PlaylistParser struct {
	timeout time.Duration
}

// NewPlaylistParser creates a parser with the default timeout
func NewPlaylistParser() *PlaylistParser {
	return &PlaylistParser{
		timeout: DefaultPlaylistParseTimeout,
	}
}

// SetTimeout sets the timeout for parsing operations. Non-positive values
// keep the current one.
func (p *PlaylistParser) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		p.timeout = timeout
	}
}

// IsPlaylistURL reports whether the URL carries a playlist ID
func (p *PlaylistParser) IsPlaylistURL(rawURL string) bool {
	return ExtractPlaylistID(rawURL) != ""
}

// ParsePlaylist lists every video of the playlist
func (p *PlaylistParser) ParsePlaylist(ctx context.Context, rawURL string) (*model.Playlist, error) {
	playlistID := ExtractPlaylistID(rawURL)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", rawURL)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	playlist := model.NewPlaylist(playlistID, rawURL)
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		playlist.AddEntry(&model.PlaylistEntry{
			VideoID: it.VideoID,
			Title:   it.Title,
			URL:     fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}
	if playlist.Len() == 0 {
		return nil, fmt.Errorf("playlist %s has no videos", playlistID)
	}
	playlist.Title = playlistTitle(playlist.Entries)

	return playlist, nil
}

// ExtractPlaylistID returns the value of the "list" query parameter
func ExtractPlaylistID(rawURL string) string {
	if u, err := url.Parse(strings.TrimSpace(rawURL)); err == nil {
		if id := u.Query().Get(PlaylistParam); id != "" {
			return id
		}
	}

	// Not a parseable URL, fall back to plain splitting
	_, rest, found := strings.Cut(rawURL, PlaylistParamExpr)
	if !found {
		return ""
	}
	id, _, _ := strings.Cut(rest, ParamSeparator)
	return strings.TrimSpace(id)
}

// playlistTitle derives a title from the common prefix of the first two entries
func playlistTitle(entries []*model.PlaylistEntry) string {
	if len(entries) == 0 {
		return DefaultPlaylistName
	}
	if len(entries) > 1 {
		prefix := commonPrefix(entries[0].Title, entries[1].Title)
		if len(prefix) > MinPrefixLength {
			return strings.TrimSpace(prefix) + PlaylistSuffix
		}
	}
	return entries[0].Title + PlaylistSuffix
}

// commonPrefix finds the common prefix between two strings
func commonPrefix(s1, s2 string) string {
	minLen := min(len(s1), len(s2))
	for i := 0; i < minLen; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:minLen]
}
