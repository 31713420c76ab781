package config

import (
	"slices"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-desktop/internal/download"
	"github.com/ytget/yt-desktop/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyVideoDir     = "video_directory"
	KeyAudioDir     = "audio_directory"
	KeyVideoQuality = "video_quality"
	KeyAudioFormat  = "audio_format"
	KeyPlaylistMode = "playlist_mode"
	KeyLanguage     = "app_language"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultPlaylistMode = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetVideoDirectory returns the directory video downloads land in
func (s *Settings) GetVideoDirectory() string {
	dir := s.app.Preferences().String(KeyVideoDir)
	if dir == "" {
		defaultDir, err := platform.DefaultVideoDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetVideoDirectory(defaultDir)
		return defaultDir
	}
	return platform.SanitizeOutputDir(dir)
}

// SetVideoDirectory sets the video download directory
func (s *Settings) SetVideoDirectory(dir string) {
	s.app.Preferences().SetString(KeyVideoDir, dir)
}

// GetAudioDirectory returns the directory audio downloads land in
func (s *Settings) GetAudioDirectory() string {
	dir := s.app.Preferences().String(KeyAudioDir)
	if dir == "" {
		defaultDir, err := platform.DefaultMusicDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetAudioDirectory(defaultDir)
		return defaultDir
	}
	return platform.SanitizeOutputDir(dir)
}

// SetAudioDirectory sets the audio download directory
func (s *Settings) SetAudioDirectory(dir string) {
	s.app.Preferences().SetString(KeyAudioDir, dir)
}

// GetVideoQuality returns the selected video quality, clamped to a
// known label.
func (s *Settings) GetVideoQuality() string {
	quality := s.app.Preferences().String(KeyVideoQuality)
	if !slices.Contains(download.VideoQualityNames, quality) {
		s.SetVideoQuality(download.DefaultVideoQuality)
		return download.DefaultVideoQuality
	}
	return quality
}

// SetVideoQuality sets the video quality
func (s *Settings) SetVideoQuality(quality string) {
	if !slices.Contains(download.VideoQualityNames, quality) {
		quality = download.DefaultVideoQuality
	}
	s.app.Preferences().SetString(KeyVideoQuality, quality)
}

// GetAudioFormat returns the selected audio format, clamped to a known
// label.
func (s *Settings) GetAudioFormat() string {
	format := s.app.Preferences().String(KeyAudioFormat)
	if !slices.Contains(download.AudioFormatNames, format) {
		s.SetAudioFormat(download.DefaultAudioFormat)
		return download.DefaultAudioFormat
	}
	return format
}

// SetAudioFormat sets the audio format
func (s *Settings) SetAudioFormat(format string) {
	if !slices.Contains(download.AudioFormatNames, format) {
		format = download.DefaultAudioFormat
	}
	s.app.Preferences().SetString(KeyAudioFormat, format)
}

// GetPlaylistMode returns whether audio downloads pull whole playlists
func (s *Settings) GetPlaylistMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyPlaylistMode, DefaultPlaylistMode)
}

// SetPlaylistMode sets the playlist mode flag
func (s *Settings) SetPlaylistMode(enabled bool) {
	s.app.Preferences().SetBool(KeyPlaylistMode, enabled)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
