package model

import "testing"

func TestTaskStatusIsActive(t *testing.T) {
	active := []TaskStatus{TaskStatusStarting, TaskStatusDownloading, TaskStatusStopping}
	for _, s := range active {
		if !s.IsActive() {
			t.Errorf("Expected %s to be active", s)
		}
	}

	inactive := []TaskStatus{TaskStatusPending, TaskStatusStopped, TaskStatusCompleted, TaskStatusError}
	for _, s := range inactive {
		if s.IsActive() {
			t.Errorf("Expected %s to not be active", s)
		}
	}
}

func TestTaskStatusIsFinished(t *testing.T) {
	finished := []TaskStatus{TaskStatusCompleted, TaskStatusStopped, TaskStatusError}
	for _, s := range finished {
		if !s.IsFinished() {
			t.Errorf("Expected %s to be finished", s)
		}
	}

	unfinished := []TaskStatus{TaskStatusPending, TaskStatusStarting, TaskStatusDownloading, TaskStatusStopping}
	for _, s := range unfinished {
		if s.IsFinished() {
			t.Errorf("Expected %s to not be finished", s)
		}
	}
}
