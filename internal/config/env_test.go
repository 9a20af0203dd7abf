package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("YTPRO_DEBUG", "true")
	t.Setenv("YTPRO_QUALITY", "1080p")
	t.Setenv("YTPRO_FORMAT", "mp3")
	t.Setenv("YTPRO_OUTPUT", "/tmp/yt")
	t.Setenv("YTPRO_TRANSCODE", "1")
	t.Setenv("YTPRO_PLAYLIST_TIMEOUT", "2m30s")

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := Env{Debug: true, Quality: "1080p", Format: "mp3", Output: "/tmp/yt", Transcode: true, PlaylistTimeout: 150 * time.Second}
	if *env != expected {
		t.Errorf("Expected %+v, got %+v", expected, *env)
	}
}

func TestLoadEnv_Empty(t *testing.T) {
	for _, key := range []string{"YTPRO_DEBUG", "YTPRO_QUALITY", "YTPRO_FORMAT", "YTPRO_OUTPUT", "YTPRO_TRANSCODE", "YTPRO_PLAYLIST_TIMEOUT"} {
		// Setenv restores the variable after the test
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if *env != (Env{}) {
		t.Errorf("Expected zero values, got %+v", *env)
	}
}

func TestLoadEnv_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"YTPRO_DEBUG", "maybe"},
		{"YTPRO_PLAYLIST_TIMEOUT", "soon"},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			t.Setenv(test.key, test.value)

			if _, err := LoadEnv(); err == nil {
				t.Errorf("Expected an error for %s=%q", test.key, test.value)
			}
		})
	}
}
