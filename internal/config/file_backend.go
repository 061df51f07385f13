package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ytget/yt-settings/internal/platform"
)

// preferencesFilePermissions restricts the file to the owning user
const preferencesFilePermissions = 0600

// FileBackend stores preferences as a flat YAML map in a single file.
// Every write rewrites the file through a temp file and a rename, so after
// a crash either the previous or the new content is on disk.
type FileBackend struct {
	mu     sync.Mutex
	path   string
	values map[string]any
	log    *slog.Logger
}

// OpenFile loads the preferences file at path, creating its directory when
// needed. A missing file starts empty; a malformed one is logged and
// ignored, and is replaced on the next write.
func OpenFile(path string, log *slog.Logger) (*FileBackend, error) {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("create preferences dir: %w", err)
	}

	b := &FileBackend{
		path:   path,
		values: make(map[string]any),
		log:    log,
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return b, nil
	case err != nil:
		log.Warn("preferences unreadable, starting empty", "path", path, "err", err)
		return b, nil
	}

	if err := yaml.Unmarshal(data, &b.values); err != nil {
		log.Warn("preferences malformed, starting empty", "path", path, "err", err)
		b.values = make(map[string]any)
	}
	if b.values == nil {
		b.values = make(map[string]any)
	}
	return b, nil
}

// Path returns the file the backend persists to
func (b *FileBackend) Path() string {
	return b.path
}

// BoolWithFallback returns the bool under key, or fallback
func (b *FileBackend) BoolWithFallback(key string, fallback bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.values[key].(bool); ok {
		return v
	}
	return fallback
}

// SetBool stores a bool and persists the file
func (b *FileBackend) SetBool(key string, value bool) {
	b.set(key, value)
}

// IntWithFallback returns the int under key, or fallback
func (b *FileBackend) IntWithFallback(key string, fallback int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch v := b.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	default:
		return fallback
	}
}

// SetInt stores an int and persists the file
func (b *FileBackend) SetInt(key string, value int) {
	b.set(key, value)
}

// StringWithFallback returns the string under key, or fallback
func (b *FileBackend) StringWithFallback(key, fallback string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.values[key].(string); ok {
		return v
	}
	return fallback
}

// SetString stores a string and persists the file
func (b *FileBackend) SetString(key string, value string) {
	b.set(key, value)
}

// RemoveValue deletes key and persists the file
func (b *FileBackend) RemoveValue(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.values[key]; !ok {
		return
	}
	delete(b.values, key)
	b.persistLocked()
}

func (b *FileBackend) set(key string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = value
	b.persistLocked()
}

// persistLocked writes the whole map. The caller holds b.mu.
func (b *FileBackend) persistLocked() {
	if err := b.writeFile(); err != nil {
		b.log.Error("failed to persist preferences", "path", b.path, "err", err)
	}
}

func (b *FileBackend) writeFile() error {
	data, err := yaml.Marshal(b.values)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(b.path), ".preferences-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, preferencesFilePermissions); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		return fmt.Errorf("replace preferences file: %w", err)
	}
	return nil
}
