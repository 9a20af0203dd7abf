package model

// Status represents the state of the download started from the form
type Status string

const (
	// StatusIdle means nothing has been started yet
	StatusIdle Status = "Idle"

	// StatusResolving means the source is looking up available streams
	StatusResolving Status = "Resolving"

	// StatusDownloading means bytes are being transferred
	StatusDownloading Status = "Downloading"

	// StatusConverting means the audio is being transcoded to MP3
	StatusConverting Status = "Converting"

	// StatusCompleted means the file was written successfully
	StatusCompleted Status = "Completed"

	// StatusFailed means the download ended with an error
	StatusFailed Status = "Failed"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsFinished returns true if the download is completed or failed
func (s Status) IsFinished() bool {
	return s == StatusCompleted || s == StatusFailed
}
