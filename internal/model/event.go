package model

// Progress is one byte-count update from a transfer.
type Progress struct {
	BytesDownloaded int64
	TotalBytes      int64
}

// Percent returns BytesDownloaded / TotalBytes * 100 clamped to [0, 100].
// An unknown total yields 0.
func (p Progress) Percent() float64 {
	if p.TotalBytes <= 0 || p.BytesDownloaded <= 0 {
		return 0
	}
	if p.BytesDownloaded >= p.TotalBytes {
		return 100
	}
	return float64(p.BytesDownloaded) / float64(p.TotalBytes) * 100
}

// EventKind identifies a message sent from the download worker.
type EventKind string

const (
	EventResolving  EventKind = "resolving"
	EventStarted    EventKind = "started"
	EventProgress   EventKind = "progress"
	EventConverting EventKind = "converting"
	EventCompleted  EventKind = "completed"
	EventSkipped    EventKind = "skipped"
	EventFailed     EventKind = "failed"
)

// Event is a single message from the worker goroutine to the UI.
type Event struct {
	JobID    string
	Kind     EventKind
	URL      string
	Title    string
	Progress Progress
	Path     string // output file, set on Completed and Skipped
	Err      error  // set on Failed

	// Position inside a batch; Total is 0 for single downloads
	Index int
	Total int
}

// Status maps the event to the status it moves the download into.
func (e Event) Status() Status {
	switch e.Kind {
	case EventResolving:
		return StatusResolving
	case EventStarted, EventProgress:
		return StatusDownloading
	case EventConverting:
		return StatusConverting
	case EventCompleted, EventSkipped:
		return StatusCompleted
	case EventFailed:
		return StatusFailed
	default:
		return StatusIdle
	}
}
