package download

import (
	"github.com/ytget/yt-desktop/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	// SetUpdateCallback registers the function invoked on every task
	// state change. The callback runs on the worker goroutine.
	SetUpdateCallback(func(*model.DownloadTask))

	// Start validates the request and launches the download in the
	// background. It fails when another download is already running.
	Start(req Request) (*model.DownloadTask, error)

	// Cancel requests cancellation of the running download.
	Cancel() error

	// Current returns the task in flight, or nil when idle.
	Current() *model.DownloadTask
}
