package convert

import (
	"fmt"

	"github.com/bogem/id3v2"

	"github.com/ytget/ytpro/internal/model"
)

// ID3Version is the tag version written; v2.3 is what most players read
const ID3Version = 3

// ID3Tagger writes title and artist tags into MP3 files
type ID3Tagger struct{}

// NewID3Tagger creates a tagger
func NewID3Tagger() *ID3Tagger {
	return &ID3Tagger{}
}

// Tag stores the video title and channel name in the file's ID3 tag
func (t *ID3Tagger) Tag(path string, video *model.Video) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("id3 open error: %w", err)
	}
	defer tag.Close()

	tag.SetVersion(ID3Version)
	tag.SetTitle(video.Title)
	if video.Author != "" {
		tag.SetArtist(video.Author)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("id3 save error: %w", err)
	}
	return nil
}
