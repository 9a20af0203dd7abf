package download

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"

	"github.com/ytget/ytpro/internal/model"
)

// Names used when neither the title nor the ID yield one
const (
	FallbackBaseName       = "download"
	FallbackPlaylistFolder = "playlist"
)

// illegalFileChars matches characters that are not allowed in file names on
// at least one supported OS
var illegalFileChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// SanitizeFilename removes \ / * ? : " < > | from title.
func SanitizeFilename(title string) string {
	return illegalFileChars.ReplaceAllString(title, "")
}

// OutputFilename derives the file name for a video title and format, e.g.
// "My:Video*Test" with MP3 gives "MyVideoTest.mp3". videoID is used when the
// sanitized title is blank.
func OutputFilename(title, videoID string, format model.Format) string {
	base := SanitizeFilename(title)
	if strings.TrimSpace(base) == "" {
		base = SanitizeFilename(videoID)
	}
	if strings.TrimSpace(base) == "" {
		base = FallbackBaseName
	}
	return base + format.Extension()
}

// PlaylistFolder returns a directory name for a playlist, e.g. "lo-fi-beats"
// for "Lo-Fi Beats!".
func PlaylistFolder(title, playlistID string) string {
	if name := slug.Make(title); name != "" {
		return name
	}
	if name := slug.Make(playlistID); name != "" {
		return name
	}
	return FallbackPlaylistFolder
}
