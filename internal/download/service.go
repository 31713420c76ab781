package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-desktop/internal/model"
	"github.com/ytget/yt-desktop/internal/platform"
	"github.com/ytget/yt-desktop/internal/validate"
)

// Retry policy
const (
	// MaxAttempts is the total number of download attempts
	MaxAttempts = 3

	// BaseRetryDelay doubles after every failed attempt
	BaseRetryDelay = 2 * time.Second
)

// ErrBusy is returned by Start while another download is in flight.
var ErrBusy = errors.New("a download is already in progress")

// stopPollInterval is how often the monitor goroutine checks for a
// cancellation request.
const stopPollInterval = 100 * time.Millisecond

// progressInterval throttles engine progress callbacks.
const progressInterval = 500 * time.Millisecond

// Service runs downloads one at a time. Each window owns one Service;
// the single in-flight rule is what lets the windows disable their
// button while a download runs.
type Service struct {
	mu       sync.RWMutex
	current  *model.DownloadTask
	onUpdate func(*model.DownloadTask) // callback for UI updates
}

// NewService creates a new download service
func NewService() *Service {
	return &Service{}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Current returns the task in flight, or nil when idle.
func (s *Service) Current() *model.DownloadTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.current.Status.IsFinished() {
		return nil
	}
	return s.current
}

// Start validates the request and launches the download in the
// background. Validation failures are returned synchronously so the
// window can show them immediately; engine failures arrive through the
// update callback.
func (s *Service) Start(req Request) (*model.DownloadTask, error) {
	var (
		cleaned string
		err     error
	)
	if req.Playlist {
		cleaned, err = validate.ValidatePlaylistURL(req.URL)
	} else {
		cleaned, err = validate.ValidateURL(req.URL)
	}
	if err != nil {
		return nil, err
	}
	req.URL = cleaned
	req.OutputDir = platform.SanitizeOutputDir(req.OutputDir)

	s.mu.Lock()
	if s.current != nil && !s.current.Status.IsFinished() {
		s.mu.Unlock()
		return nil, ErrBusy
	}

	task := &model.DownloadTask{
		ID:        generateTaskID(),
		URL:       req.URL,
		Mode:      req.Mode,
		Status:    model.TaskStatusPending,
		Progress:  0.0,
		Percent:   0,
		ETASec:    -1,
		StartedAt: time.Now(),
	}
	s.current = task
	s.mu.Unlock()

	go s.run(task, req)

	return task, nil
}

// Cancel requests cancellation of the running download.
func (s *Service) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || !s.current.Status.IsActive() {
		return fmt.Errorf("no active download")
	}

	// The worker's monitor goroutine observes this and cancels the
	// engine context.
	s.current.Status = model.TaskStatusStopping
	s.notifyUpdate(s.current)
	return nil
}

// run executes one download from preflight to final status.
func (s *Service) run(task *model.DownloadTask, req Request) {
	s.setStatus(task, model.TaskStatusStarting)

	if err := s.preflight(task, &req); err != nil {
		s.fail(task, err)
		return
	}

	dl, err := buildCommand(req)
	if err != nil {
		s.fail(task, err)
		return
	}

	s.setStatus(task, model.TaskStatusDownloading)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Monitor for stop requests
	go func() {
		for {
			s.mu.RLock()
			status := task.Status
			s.mu.RUnlock()

			if status == model.TaskStatusStopping {
				cancel()
				return
			}
			if status.IsFinished() {
				return
			}
			time.Sleep(stopPollInterval)
		}
	}()

	dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
		s.updateTaskProgress(task, &update)
	})

	result, err := s.downloadWithRetry(ctx, dl, task)

	s.mu.Lock()
	if err != nil {
		if ctx.Err() == context.Canceled {
			task.Status = model.TaskStatusStopped
		} else {
			task.Status = model.TaskStatusError
			task.LastError = err.Error()
			task.UserMessage = UserMessage(err)
		}
	} else {
		task.Status = model.TaskStatusCompleted
		task.Progress = 1.0
		task.Percent = 100

		if result != nil {
			info, err := result.GetExtractedInfo()
			if err == nil && len(info) > 0 {
				if info[0].Filename != nil {
					task.OutputPath = *info[0].Filename
				}
			}
		}
	}
	task.FinishedAt = time.Now()
	s.mu.Unlock()

	s.notifyUpdate(task)
}

// preflight prepares the output directory and verifies the environment
// before the engine is invoked.
func (s *Service) preflight(task *model.DownloadTask, req *Request) error {
	if err := platform.CreateDirectoryIfNotExists(req.OutputDir); err != nil {
		return fmt.Errorf("permission denied: cannot create %s: %w", req.OutputDir, err)
	}

	if err := platform.CheckDiskSpace(req.OutputDir); err != nil {
		return err
	}

	if req.FfmpegPath == "" {
		path, err := platform.ResolveFfmpeg()
		if err != nil {
			return fmt.Errorf("ffmpeg is required: %w", err)
		}
		req.FfmpegPath = path
	}
	if err := platform.ValidateFfmpeg(req.FfmpegPath); err != nil {
		return fmt.Errorf("ffmpeg is not usable: %w", err)
	}

	return nil
}

// fail marks the task failed with a sanitized message.
func (s *Service) fail(task *model.DownloadTask, err error) {
	log.Printf("Download %s failed before start: %v", task.ID, err)

	s.mu.Lock()
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.UserMessage = UserMessage(err)
	task.FinishedAt = time.Now()
	s.mu.Unlock()

	s.notifyUpdate(task)
}

// setStatus transitions the task and notifies the UI.
func (s *Service) setStatus(task *model.DownloadTask, status model.TaskStatus) {
	s.mu.Lock()
	task.Status = status
	s.mu.Unlock()
	s.notifyUpdate(task)
}

// downloadWithRetry attempts download with exponential backoff. Errors
// a retry cannot fix stop the loop immediately.
func (s *Service) downloadWithRetry(ctx context.Context, dl *ytdlp.Command, task *model.DownloadTask) (*ytdlp.Result, error) {
	var lastErr error
	var result *ytdlp.Result

	delay := BaseRetryDelay
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			delay *= 2

			log.Printf("Retrying download for task %s, attempt %d", task.ID, attempt)
		}

		res, err := dl.Run(ctx, task.URL)
		if err == nil {
			return res, nil
		}

		lastErr = err
		result = res // Keep last result even if there was an error
		log.Printf("Download attempt %d failed for task %s: %v", attempt, task.ID, err)

		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		if !Retryable(err) {
			return result, err
		}
	}

	return result, lastErr
}

// updateTaskProgress updates task progress from engine callbacks
func (s *Service) updateTaskProgress(task *model.DownloadTask, update *ytdlp.ProgressUpdate) {
	s.mu.Lock()

	if update.TotalBytes > 0 {
		percent := float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
		task.Percent = int(percent)
		task.Progress = percent / 100.0
	}

	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			bytesPerSecond := float64(update.DownloadedBytes) / elapsed.Seconds()
			task.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
		}
	}

	eta := update.ETA()
	if eta > 0 {
		task.ETASec = int(eta.Seconds())
	}

	if update.Info != nil && update.Info.Title != nil && *update.Info.Title != "" && task.Title == "" {
		task.Title = *update.Info.Title
	}

	s.mu.Unlock()

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set. Callers may hold the
// mutex, so the callback field is read without locking; the callback is
// registered once before Start and never swapped mid-download.
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("task-%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("task-%s", id.String())
}
