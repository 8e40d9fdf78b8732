package store

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDataDir returns the OS-appropriate default data directory for
// fittrack.
//
//   - macOS:   ~/Library/Application Support/fittrack
//   - Linux:   $XDG_DATA_HOME/fittrack (fallback ~/.local/share/fittrack)
//   - Windows: %LOCALAPPDATA%\fittrack (fallback %APPDATA%\fittrack)
func DefaultDataDir() string {
	return defaultDataDirForOS(runtime.GOOS)
}

func defaultDataDirForOS(goos string) string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "fittrack")
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, "fittrack")
		}
		if dir := os.Getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, "fittrack")
		}
		return filepath.Join(home, "fittrack")
	default: // linux, freebsd, etc.
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return filepath.Join(dir, "fittrack")
		}
		return filepath.Join(home, ".local", "share", "fittrack")
	}
}
