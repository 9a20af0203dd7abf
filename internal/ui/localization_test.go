package ui

import (
	"strings"
	"testing"
)

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	english := l.texts["en"]
	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Fatalf("Missing texts for %s", lang)
		}
		for key := range english {
			if texts[key] == "" {
				t.Errorf("Language %s misses key %s", lang, key)
			}
		}
	}
}

func TestLocalization_StatusFormats(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		l.SetLanguage(lang)
		for _, key := range []string{KeyStatusDownloading, KeyStatusConverting, KeyErrLibrary} {
			if strings.Count(l.GetText(key), "%s") != 1 {
				t.Errorf("%s/%s must contain exactly one %%s", lang, key)
			}
		}
		if strings.Count(l.GetText(KeyPlaylistFinished), "%d") != 2 {
			t.Errorf("%s/%s must contain two %%d", lang, KeyPlaylistFinished)
		}
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should map to en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Unknown language must be ignored, got %s", l.GetCurrentLanguage())
	}

	if l.GetText("missing_key") != "missing_key" {
		t.Error("Unknown keys should be returned as is")
	}
}
