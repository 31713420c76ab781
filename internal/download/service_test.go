package download

import (
	"errors"
	"strings"
	"testing"

	"github.com/ytget/yt-desktop/internal/model"
)

func TestStart_InvalidURL(t *testing.T) {
	service := NewService()

	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "empty URL",
			req:  Request{URL: "", Mode: model.ModeVideo, OutputDir: "/tmp"},
		},
		{
			name: "non-youtube URL",
			req:  Request{URL: "https://vimeo.com/123", Mode: model.ModeVideo, OutputDir: "/tmp"},
		},
		{
			name: "playlist mode without list parameter",
			req:  Request{URL: "https://youtube.com/watch?v=abc", Mode: model.ModeAudio, Playlist: true, OutputDir: "/tmp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Start(tt.req)
			if err == nil {
				t.Error("Expected validation error, got nil")
			}
			if service.Current() != nil {
				t.Error("Expected no task after failed validation")
			}
		})
	}
}

func TestStart_RejectsSecondDownload(t *testing.T) {
	service := NewService()
	service.current = &model.DownloadTask{
		ID:     "task-test",
		Status: model.TaskStatusDownloading,
	}

	_, err := service.Start(Request{
		URL:       "https://youtube.com/watch?v=abc",
		Mode:      model.ModeVideo,
		OutputDir: "/tmp",
	})
	if err == nil {
		t.Fatal("Expected error when a download is in progress, got nil")
	}
	if !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy, got: %v", err)
	}
}

func TestCancel(t *testing.T) {
	service := NewService()

	// No active download
	if err := service.Cancel(); err == nil {
		t.Error("Expected error when canceling with no active download")
	}

	// Active download moves to Stopping
	var notified *model.DownloadTask
	service.SetUpdateCallback(func(task *model.DownloadTask) {
		notified = task
	})
	service.current = &model.DownloadTask{
		ID:     "task-test",
		Status: model.TaskStatusDownloading,
	}

	if err := service.Cancel(); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if service.current.Status != model.TaskStatusStopping {
		t.Errorf("Expected status Stopping, got %s", service.current.Status)
	}
	if notified == nil {
		t.Error("Expected update callback to fire on cancel")
	}

	// Finished download cannot be canceled
	service.current.Status = model.TaskStatusCompleted
	if err := service.Cancel(); err == nil {
		t.Error("Expected error when canceling a finished download")
	}
}

func TestCurrent(t *testing.T) {
	service := NewService()

	if service.Current() != nil {
		t.Error("Expected nil current task on a fresh service")
	}

	service.current = &model.DownloadTask{ID: "task-a", Status: model.TaskStatusDownloading}
	if service.Current() == nil {
		t.Error("Expected active task to be returned")
	}

	service.current.Status = model.TaskStatusCompleted
	if service.Current() != nil {
		t.Error("Expected nil once the task is finished")
	}
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	id2 := generateTaskID()

	if id1 == id2 {
		t.Errorf("Expected unique IDs, got %s twice", id1)
	}
	if !strings.HasPrefix(id1, "task-") {
		t.Errorf("Expected 'task-' prefix, got %s", id1)
	}
}
