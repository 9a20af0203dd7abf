package download

// Package download implements the download pipeline: request validation,
// stream selection, filename derivation, the byte transfer through a Source
// and the event stream that carries progress back to the UI thread.
