package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Android storage locations
const (
	AndroidDownloadsDir = "/sdcard/Download"
	androidLibName      = "libdist.so" // Fyne Android apps run as libdist.so
)

// Environment variables that only exist on Android
var androidEnvVars = []string{"ANDROID_DATA", "ANDROID_ROOT", "ANDROID_STORAGE"}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// IsAndroid reports whether the process runs on Android
func IsAndroid() bool {
	if runtime.GOOS == OSAndroid || filepath.Base(os.Args[0]) == androidLibName {
		return true
	}
	for _, name := range androidEnvVars {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	// External storage keeps files visible in the gallery and file manager
	if IsAndroid() {
		return AndroidDownloadsDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// PreferencesFile returns the default location of the settings file used
// outside the app, under the user's config directory
func PreferencesFile(appID string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, appID, "preferences.yaml"), nil
}
