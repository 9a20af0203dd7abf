package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// DirPermissions is used for output and playlist directories
const DirPermissions = 0o755

// DownloadsDirName is the folder under the home directory used by default
const DownloadsDirName = "Downloads"

// ErrNoFileManager is returned when nothing can show a saved file
var ErrNoFileManager = errors.New("no suitable file manager found")

// linuxFileManagers are tried in order when xdg-open is not available
var linuxFileManagers = []string{"xdg-open", "nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// revealCommand returns the command that shows path in the file manager of goos.
// Linux has no common way to select a file, so its parent directory is opened.
func revealCommand(goos, path string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", "-R", path), nil
	case "windows":
		return exec.Command("explorer", "/select,"+path), nil
	case "linux", "freebsd", "openbsd":
		dir := filepath.Dir(path)
		for _, fm := range linuxFileManagers {
			if bin, err := exec.LookPath(fm); err == nil {
				return exec.Command(bin, dir), nil
			}
		}
		return nil, ErrNoFileManager
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// RevealInFileManager shows a saved download in the system file manager
func RevealInFileManager(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	cmd, err := revealCommand(runtime.GOOS, abs)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// EnsureDir creates dir and its parents when missing
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("%s exists and is not a directory", dir)
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist):
		return os.MkdirAll(dir, DirPermissions)
	default:
		return err
	}
}

// DownloadsDir returns ~/Downloads for the current user
func DownloadsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, DownloadsDirName), nil
}
