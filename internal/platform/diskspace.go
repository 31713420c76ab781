package platform

import "fmt"

// MinFreeSpaceBytes is the minimum free disk space required before a
// download is allowed to start.
const MinFreeSpaceBytes = 500 * 1024 * 1024

// CheckDiskSpace verifies the target directory has at least
// MinFreeSpaceBytes available.
func CheckDiskSpace(dir string) error {
	free, err := freeSpaceBytes(dir)
	if err != nil {
		return err
	}
	if free < MinFreeSpaceBytes {
		return fmt.Errorf("insufficient disk space: %dMB available, %dMB required",
			free/(1024*1024), MinFreeSpaceBytes/(1024*1024))
	}
	return nil
}
