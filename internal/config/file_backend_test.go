package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/yt-settings/internal/logger"
)

func TestOpenFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")

	b, err := OpenFile(path, logger.Discard())
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	if got := b.StringWithFallback(KeyTemplate, "def"); got != "def" {
		t.Errorf("Expected fallback, got %s", got)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("Directory should be created: %v", err)
	}
}

func TestFileBackend_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")

	b, err := OpenFile(path, logger.Discard())
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	b.SetBool(KeyPlaylist, true)
	b.SetInt(KeyVideoQuality, 2)
	b.SetInt(KeyThemeColor, argbToInt(0xFF415F76))
	b.SetString(KeyTemplate, "true")

	reopened, err := OpenFile(path, logger.Discard())
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	if !reopened.BoolWithFallback(KeyPlaylist, false) {
		t.Error("bool not persisted")
	}
	if got := reopened.IntWithFallback(KeyVideoQuality, 0); got != 2 {
		t.Errorf("int not persisted, got %d", got)
	}
	if got := intToARGB(reopened.IntWithFallback(KeyThemeColor, 0)); got != 0xFF415F76 {
		t.Errorf("color not persisted, got %08X", got)
	}
	if got := reopened.StringWithFallback(KeyTemplate, ""); got != "true" {
		t.Errorf("string that looks like a bool must stay a string, got %q", got)
	}
}

func TestFileBackend_TypeMismatchFallsBack(t *testing.T) {
	b, err := OpenFile(filepath.Join(t.TempDir(), "preferences.yaml"), logger.Discard())
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	b.SetString(KeyVideoQuality, "high")

	if got := b.IntWithFallback(KeyVideoQuality, 7); got != 7 {
		t.Errorf("Expected fallback 7, got %d", got)
	}
	if got := b.BoolWithFallback(KeyVideoQuality, true); got != true {
		t.Error("Expected fallback true")
	}
}

func TestFileBackend_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	if err := os.WriteFile(path, []byte("quality: [unterminated"), 0600); err != nil {
		t.Fatal(err)
	}

	b, err := OpenFile(path, logger.Discard())
	if err != nil {
		t.Fatalf("Malformed file should not fail open: %v", err)
	}
	if got := b.IntWithFallback(KeyVideoQuality, 0); got != 0 {
		t.Errorf("Expected empty store, got %d", got)
	}

	b.SetInt(KeyVideoQuality, 4)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "quality: 4") {
		t.Errorf("File should be rewritten, got %q", string(data))
	}
}

func TestFileBackend_RemoveValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	b, err := OpenFile(path, logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	b.SetBool(KeyDebug, true)
	b.RemoveValue(KeyDebug)
	b.RemoveValue("never_set")

	reopened, err := OpenFile(path, logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if reopened.BoolWithFallback(KeyDebug, false) {
		t.Error("removed key should be gone after reopen")
	}
}

func TestFileBackend_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	b, err := OpenFile(filepath.Join(dir, "preferences.yaml"), logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		b.SetInt(KeyConcurrentFragments, i)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "preferences.yaml" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only preferences.yaml, got %v", names)
	}
}

func TestStoreOverFileBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	b, err := OpenFile(path, logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	store := NewStore(b, WithLogger(logger.Discard()))
	store.SetLanguage(2)

	reopened, err := OpenFile(path, logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if got := NewStore(reopened, WithLogger(logger.Discard())).Language(); got != 2 {
		t.Errorf("Expected language 2 after reopen, got %d", got)
	}
}
