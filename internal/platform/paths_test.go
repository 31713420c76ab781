package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestDefaultVideoDir(t *testing.T) {
	dir, err := DefaultVideoDir()
	if err != nil {
		t.Fatalf("Failed to get video directory: %v", err)
	}

	if dir == "" {
		t.Fatal("Video directory is empty")
	}

	expected := "Videos"
	if runtime.GOOS == OSDarwin {
		expected = "Movies"
	}
	if filepath.Base(dir) != expected {
		t.Errorf("Expected directory to end with %q, got: %s", expected, dir)
	}
}

func TestDefaultMusicDir(t *testing.T) {
	dir, err := DefaultMusicDir()
	if err != nil {
		t.Fatalf("Failed to get music directory: %v", err)
	}

	if filepath.Base(dir) != "Music" {
		t.Errorf("Expected directory to end with 'Music', got: %s", dir)
	}
}

func TestSanitizeOutputDir_AllowedRoots(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("Failed to get home directory: %v", err)
	}

	tests := []struct {
		name string
		dir  string
	}{
		{"home subdirectory", filepath.Join(home, "Videos")},
		{"temp subdirectory", filepath.Join(os.TempDir(), "downloads")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeOutputDir(tt.dir)
			if result != tt.dir {
				t.Errorf("SanitizeOutputDir(%q) = %q, expected unchanged", tt.dir, result)
			}
		})
	}
}

func TestSanitizeOutputDir_DisallowedPath(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("unix-style system paths")
	}

	fallback := fallbackDownloadsDir()

	tests := []string{
		"/etc",
		"/usr/local/bin",
	}

	for _, dir := range tests {
		result := SanitizeOutputDir(dir)
		if result != fallback {
			t.Errorf("SanitizeOutputDir(%q) = %q, expected fallback %q", dir, result, fallback)
		}
	}
}

func TestCheckDiskSpace(t *testing.T) {
	// Temp dir normally has plenty of space; mostly guards against a
	// broken stat path.
	err := CheckDiskSpace(t.TempDir())
	if err != nil {
		t.Logf("CheckDiskSpace failed (may be expected on constrained systems): %v", err)
	}
}
