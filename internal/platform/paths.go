package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// DefaultVideoDir returns the standard video directory for the user:
// ~/Movies on macOS, ~/Videos everywhere else.
func DefaultVideoDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	if runtime.GOOS == OSDarwin {
		return filepath.Join(homeDir, "Movies"), nil
	}
	return filepath.Join(homeDir, "Videos"), nil
}

// DefaultMusicDir returns the standard music directory for the user.
func DefaultMusicDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Music"), nil
}

// fallbackDownloadsDir is where output lands when the chosen directory
// fails the sanity checks.
func fallbackDownloadsDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(homeDir, "Downloads")
}

// SanitizeOutputDir resolves the directory to an absolute path and keeps
// it under the user's home, the working directory, or the temp directory.
// Anything else (a traversal into system paths, a malformed entry) falls
// back to ~/Downloads.
func SanitizeOutputDir(dir string) string {
	resolved, err := filepath.Abs(dir)
	if err != nil {
		return fallbackDownloadsDir()
	}

	var allowedRoots []string
	if home, err := os.UserHomeDir(); err == nil {
		allowedRoots = append(allowedRoots, home)
	}
	if cwd, err := os.Getwd(); err == nil {
		allowedRoots = append(allowedRoots, cwd)
	}
	allowedRoots = append(allowedRoots, os.TempDir())

	for _, root := range allowedRoots {
		if isUnderRoot(resolved, root) {
			return resolved
		}
	}

	return fallbackDownloadsDir()
}

// isUnderRoot reports whether path is root or a descendant of root
func isUnderRoot(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !startsWithParentRef(rel)
}

func startsWithParentRef(rel string) bool {
	return rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
