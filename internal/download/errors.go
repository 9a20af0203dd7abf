package download

import (
	"errors"
	"strings"
)

// User-facing validation and selection errors
var (
	ErrEmptyURL         = errors.New("please enter a YouTube URL")
	ErrEmptyOutputDir   = errors.New("please select an output directory")
	ErrNoSuitableStream = errors.New("no suitable stream found")
)

// LibraryFailurePrefix starts the message of every LibraryError
const LibraryFailurePrefix = "an error occurred: "

// LibraryError wraps any failure raised while resolving, transferring or
// writing a stream. Network and malformed-URL failures are not told apart.
type LibraryError struct {
	Err error
}

func (e *LibraryError) Error() string {
	if e.Err == nil {
		return strings.TrimSuffix(LibraryFailurePrefix, ": ")
	}
	return LibraryFailurePrefix + e.Err.Error()
}

func (e *LibraryError) Unwrap() error {
	return e.Err
}

// IsLibraryFailure reports whether err is or wraps a LibraryError
func IsLibraryFailure(err error) bool {
	var le *LibraryError
	return errors.As(err, &le)
}
