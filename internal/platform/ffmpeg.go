package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

const ffmpegProbeTimeout = 5 * time.Second

// ResolveFfmpeg locates the ffmpeg binary. On Windows a bundled copy
// next to the executable takes priority over PATH; elsewhere PATH is
// the only source.
func ResolveFfmpeg() (string, error) {
	if runtime.GOOS == OSWindows {
		if bundled := bundledFfmpegPath(); bundled != "" {
			return bundled, nil
		}
	}

	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return "", fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}
	return path, nil
}

// bundledFfmpegPath checks for an ffmpeg distribution shipped alongside
// the application binary. Returns "" when no bundle is present.
func bundledFfmpegPath() string {
	exePath, err := os.Executable()
	if err != nil {
		return ""
	}
	exeDir := filepath.Dir(exePath)

	candidates := []string{
		filepath.Join(exeDir, "ffmpeg", "bin", "ffmpeg.exe"),
		filepath.Join(exeDir, "ffmpeg.exe"),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// ValidateFfmpeg runs the binary with -version to confirm it is a
// working ffmpeg and not an unrelated executable.
func ValidateFfmpeg(path string) error {
	if path == "" {
		return fmt.Errorf("ffmpeg path is empty")
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return fmt.Errorf("ffmpeg binary not found at %s", path)
	}

	ctx, cancel := context.WithTimeout(context.Background(), ffmpegProbeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "-version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg validation failed: %w", err)
	}
	return nil
}
