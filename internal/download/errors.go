package download

import "strings"

// nonRetryableMarkers flag failures a retry can never fix.
var nonRetryableMarkers = []string{
	"video unavailable",
	"private video",
	"age-restricted",
	"sign in to confirm your age",
	"invalid url",
	"is not a valid url",
	"unsupported url",
	"permission denied",
	"insufficient disk space",
	"no space left on device",
}

// Retryable reports whether a failed attempt is worth retrying.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range nonRetryableMarkers {
		if strings.Contains(msg, marker) {
			return false
		}
	}
	return true
}

// UserMessage converts a raw engine error into a message safe to show
// in a dialog. Engine output can contain paths and URLs, so the raw
// text never reaches the UI.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ToLower(err.Error())

	// Most-common causes first: a transient network failure that also
	// mentions a subsystem must still read as a network error.
	switch {
	case strings.Contains(msg, "network") ||
		strings.Contains(msg, "timed out") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection") ||
		strings.Contains(msg, "temporary failure in name resolution"):
		return "Network error. Check your internet connection and try again."
	case strings.Contains(msg, "permission denied") || strings.Contains(msg, "access denied"):
		return "Permission denied. Check access to the download folder."
	case strings.Contains(msg, "insufficient disk space") || strings.Contains(msg, "no space left on device"):
		return "Not enough disk space to complete the download."
	case strings.Contains(msg, "ffmpeg") || strings.Contains(msg, "postprocess"):
		return "Audio/video processing failed. Check that ffmpeg is installed."
	case strings.Contains(msg, "video unavailable") || strings.Contains(msg, "private video"):
		return "This video is unavailable or private."
	case strings.Contains(msg, "sign in to confirm your age") || strings.Contains(msg, "age-restricted"):
		return "This video is age-restricted and cannot be downloaded."
	default:
		return "Download failed. Please try again."
	}
}
