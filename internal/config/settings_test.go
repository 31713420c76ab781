package config

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-desktop/internal/download"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestVideoDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default value is never empty
	dir := settings.GetVideoDirectory()
	if dir == "" {
		t.Error("Video directory should not be empty")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("Failed to get home directory: %v", err)
	}
	customDir := filepath.Join(home, "my-videos")
	settings.SetVideoDirectory(customDir)

	retrievedDir := settings.GetVideoDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected video directory %s, got %s", customDir, retrievedDir)
	}
}

func TestAudioDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	dir := settings.GetAudioDirectory()
	if dir == "" {
		t.Error("Audio directory should not be empty")
	}
	if filepath.Base(dir) != "Music" {
		t.Errorf("Expected default audio directory to end with 'Music', got %s", dir)
	}
}

func TestVideoQuality(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default
	if q := settings.GetVideoQuality(); q != download.DefaultVideoQuality {
		t.Errorf("Expected default quality %s, got %s", download.DefaultVideoQuality, q)
	}

	// Custom value round-trips
	settings.SetVideoQuality("480p")
	if q := settings.GetVideoQuality(); q != "480p" {
		t.Errorf("Expected quality 480p, got %s", q)
	}

	// Unknown value is clamped to the default
	settings.SetVideoQuality("9000p")
	if q := settings.GetVideoQuality(); q != download.DefaultVideoQuality {
		t.Errorf("Expected unknown quality to clamp to %s, got %s", download.DefaultVideoQuality, q)
	}
}

func TestAudioFormat(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if f := settings.GetAudioFormat(); f != download.DefaultAudioFormat {
		t.Errorf("Expected default format %s, got %s", download.DefaultAudioFormat, f)
	}

	settings.SetAudioFormat("FLAC")
	if f := settings.GetAudioFormat(); f != "FLAC" {
		t.Errorf("Expected format FLAC, got %s", f)
	}

	settings.SetAudioFormat("midi")
	if f := settings.GetAudioFormat(); f != download.DefaultAudioFormat {
		t.Errorf("Expected unknown format to clamp to %s, got %s", download.DefaultAudioFormat, f)
	}
}

func TestPlaylistMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetPlaylistMode() != DefaultPlaylistMode {
		t.Error("Expected playlist mode to default to false")
	}

	settings.SetPlaylistMode(true)
	if !settings.GetPlaylistMode() {
		t.Error("Expected playlist mode true after set")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}
}
