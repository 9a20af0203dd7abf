package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestComponentTagsOutput(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	SetOutput(&buf)

	logger := Component("download")
	logger.Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("Expected message in output, got %q", out)
	}
	if !strings.Contains(out, "download") {
		t.Errorf("Expected component in output, got %q", out)
	}
}

func TestInitLevel(t *testing.T) {
	Init(false)
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("Expected info level, got %s", zerolog.GlobalLevel())
	}

	Init(true)
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %s", zerolog.GlobalLevel())
	}
}
