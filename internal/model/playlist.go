package model

import (
	"time"
)

// PlaylistEntry is a single video listed in a playlist
type PlaylistEntry struct {
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}

// Playlist is a YouTube playlist expanded into its entries
type Playlist struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	URL       string           `json:"url"`
	Entries   []*PlaylistEntry `json:"entries"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewPlaylist creates a new, empty playlist for the given URL
func NewPlaylist(id, url string) *Playlist {
	return &Playlist{
		ID:        id,
		URL:       url,
		Entries:   make([]*PlaylistEntry, 0),
		CreatedAt: time.Now(),
	}
}

// AddEntry appends an entry, ignoring duplicates of an already listed video
func (p *Playlist) AddEntry(entry *PlaylistEntry) {
	for _, e := range p.Entries {
		if e.VideoID == entry.VideoID {
			return
		}
	}
	p.Entries = append(p.Entries, entry)
}

// Len returns the number of entries
func (p *Playlist) Len() int {
	return len(p.Entries)
}

// Requests builds one DownloadRequest per entry, sharing the options of base.
func (p *Playlist) Requests(base DownloadRequest) []DownloadRequest {
	reqs := make([]DownloadRequest, 0, len(p.Entries))
	for _, e := range p.Entries {
		r := base
		r.URL = e.URL
		reqs = append(reqs, r)
	}
	return reqs
}
