//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func freeSpaceBytes(dir string) (uint64, error) {
	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	dirPtr, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to encode path %s: %w", dir, err)
	}
	if err := windows.GetDiskFreeSpaceEx(dirPtr, &freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil {
		return 0, fmt.Errorf("failed to query free space for %s: %w", dir, err)
	}
	return freeBytesAvailable, nil
}
