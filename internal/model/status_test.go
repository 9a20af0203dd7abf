package model

import "testing"

func TestStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusIdle, false},
		{StatusResolving, false},
		{StatusDownloading, false},
		{StatusConverting, false},
		{StatusCompleted, true},
		{StatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("Status(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestEvent_Status(t *testing.T) {
	tests := []struct {
		kind     EventKind
		expected Status
	}{
		{EventResolving, StatusResolving},
		{EventStarted, StatusDownloading},
		{EventProgress, StatusDownloading},
		{EventConverting, StatusConverting},
		{EventCompleted, StatusCompleted},
		{EventSkipped, StatusCompleted},
		{EventFailed, StatusFailed},
	}

	for _, test := range tests {
		result := Event{Kind: test.kind}.Status()
		if result != test.expected {
			t.Errorf("Event{%s}.Status() = %s, expected %s", test.kind, result, test.expected)
		}
	}
}
