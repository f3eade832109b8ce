package resources

import (
	"os"
	"path/filepath"
)

const portableDir = "TestCHIP8_UserData"

// returns the portable path and true if the portable.txt file is beside the
// executable
func checkPortable() (string, bool) {
	exe, err := os.Executable()
	if err != nil {
		return "", false
	}
	dir := filepath.Dir(exe)
	if _, err := os.Stat(filepath.Join(dir, "portable.txt")); err != nil {
		return "", false
	}
	return filepath.Join(dir, portableDir), true
}
