package model

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects what the engine is asked to produce.
type Mode string

const (
	// ModeVideo downloads the best matching video+audio streams and merges them
	ModeVideo Mode = "video"

	// ModeAudio downloads the best audio stream and extracts it to an audio file
	ModeAudio Mode = "audio"
)

// DownloadTask represents a single download handed to the engine
type DownloadTask struct {
	ID          string
	URL         string
	Mode        Mode
	Status      TaskStatus
	Progress    float64 // 0.0 to 1.0
	Percent     int     // 0 to 100
	Speed       string  // human readable speed (e.g., "1.2 MB/s")
	ETASec      int     // ETA in seconds, -1 if unknown
	LastError   string  // raw engine error, kept for logs
	UserMessage string  // sanitized message safe to show in a dialog
	OutputPath  string  // path to downloaded file
	StartedAt   time.Time
	FinishedAt  time.Time
	Title       string // video title, once known
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (dt *DownloadTask) GetETAString() string {
	if dt.ETASec <= 0 {
		return "—"
	}

	hours := dt.ETASec / 3600
	minutes := (dt.ETASec % 3600) / 60
	seconds := dt.ETASec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// StatusText is the single-line progress summary shown under the progress bar.
func (dt *DownloadTask) StatusText() string {
	switch dt.Status {
	case TaskStatusDownloading:
		// All bytes are in but the task is not finished, so the engine
		// is extracting or converting the audio stream
		if dt.Mode == ModeAudio && dt.Percent >= 100 {
			return "Processing audio..."
		}
		if dt.Speed != "" {
			return fmt.Sprintf("Downloading: %d%% (Speed: %s, ETA: %s)", dt.Percent, dt.Speed, dt.GetETAString())
		}
		return fmt.Sprintf("Downloading: %d%%", dt.Percent)
	case TaskStatusCompleted:
		if dt.Mode == ModeAudio {
			return "Processing audio... done"
		}
		return "Download complete!"
	case TaskStatusStopping:
		return "Stopping download..."
	case TaskStatusStopped:
		return "Download canceled"
	case TaskStatusError:
		return dt.UserMessage
	default:
		return ""
	}
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Title != "" && !strings.HasPrefix(dt.Title, "http") {
		return dt.Title
	}

	if dt.OutputPath != "" {
		parts := strings.FieldsFunc(dt.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return dt.URL
}
