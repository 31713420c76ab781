package download

import (
	"fmt"
	"path/filepath"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-desktop/internal/model"
	"github.com/ytget/yt-desktop/internal/platform"
)

// Engine tuning constants
const (
	// ConcurrentFragments is how many fragments yt-dlp downloads in parallel
	ConcurrentFragments = 3

	// SocketTimeoutSeconds is passed to the engine's socket timeout flag
	SocketTimeoutSeconds = 30

	// MaxFileSize caps any single download so a pathological stream
	// cannot fill the disk
	MaxFileSize = "10G"

	// OutputTemplate truncates titles so filenames stay within OS limits
	OutputTemplate = "%(title).200s.%(ext)s"

	// MergeContainer is the container merged video+audio streams land in
	MergeContainer = "mp4"
)

// Default selections shown in the windows
const (
	DefaultVideoQuality = "1080p"
	DefaultAudioFormat  = "MP3"
)

// VideoQualityNames lists the selectable qualities in menu order.
var VideoQualityNames = []string{"360p", "480p", "720p", "1080p", "1440p", "2160p"}

// videoFormatSelectors maps a quality label to the yt-dlp format
// selector: best video capped at that height plus best audio, falling
// back to the best combined stream.
var videoFormatSelectors = map[string]string{
	"360p":  "bv*[height<=360]+ba/b[height<=360]",
	"480p":  "bv*[height<=480]+ba/b[height<=480]",
	"720p":  "bv*[height<=720]+ba/b[height<=720]",
	"1080p": "bv*[height<=1080]+ba/b[height<=1080]",
	"1440p": "bv*[height<=1440]+ba/b[height<=1440]",
	"2160p": "bv*[height<=2160]+ba/b[height<=2160]",
}

// AudioFormatNames lists the selectable audio formats in menu order.
var AudioFormatNames = []string{"MP3", "M4A", "FLAC", "WAV", "OPUS"}

// audioFormatSpec is the codec name and quality flag value handed to
// the engine for one audio format.
type audioFormatSpec struct {
	Codec   string
	Quality string
}

// audioFormatSpecs maps a format label to its engine parameters. Lossy
// codecs get an explicit 320 kbps bitrate, lossless ones the engine's
// best quality setting.
var audioFormatSpecs = map[string]audioFormatSpec{
	"MP3":  {Codec: "mp3", Quality: "320"},
	"M4A":  {Codec: "m4a", Quality: "320"},
	"FLAC": {Codec: "flac", Quality: "0"},
	"WAV":  {Codec: "wav", Quality: "0"},
	"OPUS": {Codec: "opus", Quality: "320"},
}

// Request describes one download as collected from a window.
type Request struct {
	URL          string
	Mode         model.Mode
	VideoQuality string // one of VideoQualityNames, video mode only
	AudioFormat  string // one of AudioFormatNames, audio mode only
	Playlist     bool   // audio mode only: download the whole playlist
	OutputDir    string
	FfmpegPath   string
}

// videoFormatSelector resolves a quality label to its format selector,
// falling back to the default quality for unknown labels.
func videoFormatSelector(quality string) string {
	if sel, ok := videoFormatSelectors[quality]; ok {
		return sel
	}
	return videoFormatSelectors[DefaultVideoQuality]
}

// audioFormat resolves a format label, falling back to the default.
func audioFormat(name string) audioFormatSpec {
	if spec, ok := audioFormatSpecs[name]; ok {
		return spec
	}
	return audioFormatSpecs[DefaultAudioFormat]
}

// buildCommand translates a request into a configured engine invocation.
func buildCommand(req Request) (*ytdlp.Command, error) {
	if req.OutputDir == "" {
		return nil, fmt.Errorf("output directory is empty")
	}

	dl := ytdlp.New().
		ForceOverwrites().
		RestrictFilenames().
		SocketTimeout(SocketTimeoutSeconds).
		MaxFileSize(MaxFileSize).
		ConcurrentFragments(ConcurrentFragments).
		Output(filepath.Join(req.OutputDir, OutputTemplate))

	if req.FfmpegPath != "" {
		dl = dl.FFmpegLocation(req.FfmpegPath)
	}

	switch req.Mode {
	case model.ModeAudio:
		spec := audioFormat(req.AudioFormat)
		dl = dl.ExtractAudio().
			AudioFormat(spec.Codec).
			AudioQuality(spec.Quality).
			Format("ba/b")
	default:
		dl = dl.Format(videoFormatSelector(req.VideoQuality)).
			MergeOutputFormat(MergeContainer)
	}

	if req.Playlist {
		dl = dl.YesPlaylist().PlaylistEnd(platform.MaxPlaylistItems)
	} else {
		dl = dl.NoPlaylist()
	}

	return dl, nil
}
