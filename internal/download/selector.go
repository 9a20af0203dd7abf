package download

import (
	"sort"

	"github.com/ytget/ytpro/internal/model"
)

// ExtensionMP4 is the container required for progressive video downloads
const ExtensionMP4 = "mp4"

// SelectStream picks exactly one stream for the request.
//
// MP4 requests take the first progressive mp4 stream whose resolution equals
// the requested quality; if there is none they fall back to the progressive
// mp4 stream with the highest resolution. MP3 requests take the first
// audio-only stream and ignore quality. Streams keep the order the source
// reported them in, which breaks ties.
func SelectStream(req model.DownloadRequest, streams []model.StreamDescriptor) (model.StreamDescriptor, error) {
	if req.Format == model.FormatMP3 {
		for _, s := range streams {
			if s.AudioOnly {
				return s, nil
			}
		}
		return model.StreamDescriptor{}, ErrNoSuitableStream
	}

	progressive := filterStreams(streams, func(s model.StreamDescriptor) bool {
		return s.Progressive && s.Extension == ExtensionMP4
	})

	for _, s := range progressive {
		if s.Resolution == req.Quality.String() {
			return s, nil
		}
	}

	// Requested resolution missing: degrade to the best available one.
	// Streams without a resolution rank last.
	if len(progressive) == 0 {
		return model.StreamDescriptor{}, ErrNoSuitableStream
	}
	sort.SliceStable(progressive, func(i, j int) bool {
		return progressive[i].ResolutionValue() > progressive[j].ResolutionValue()
	})
	return progressive[0], nil
}

// filterStreams returns the streams matching keep, in their original order
func filterStreams(streams []model.StreamDescriptor, keep func(model.StreamDescriptor) bool) []model.StreamDescriptor {
	var out []model.StreamDescriptor
	for _, s := range streams {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
