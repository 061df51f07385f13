package config

import (
	"errors"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-settings/internal/logger"
	"github.com/ytget/yt-settings/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	app := test.NewApp()
	return NewStore(app.Preferences(),
		WithLogger(logger.Discard()),
		WithDownloadsDir(func() (string, error) { return "/home/test/Downloads", nil }),
	)
}

func TestNewStore(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app.Preferences())

	if store.prefs == nil {
		t.Error("Store backend should be the provided preferences")
	}
	if store.log == nil {
		t.Error("Store should have a default logger")
	}
}

func TestGetReturnsDefaultBeforeSet(t *testing.T) {
	store := newTestStore(t)

	if got := store.GetBool("never_set_bool", true); got != true {
		t.Errorf("Expected default true, got %v", got)
	}
	if got := store.GetBool("never_set_bool", false); got != false {
		t.Errorf("Expected default false, got %v", got)
	}
	if got := store.GetInt("never_set_int", 42); got != 42 {
		t.Errorf("Expected default 42, got %d", got)
	}
	if got := store.GetString("never_set_string", "fallback"); got != "fallback" {
		t.Errorf("Expected default 'fallback', got %s", got)
	}
}

func TestSetThenGet(t *testing.T) {
	store := newTestStore(t)

	store.SetBool(KeyDebug, true)
	if !store.GetBool(KeyDebug, false) {
		t.Error("Expected debug to be true after set")
	}

	store.SetInt(KeyVideoQuality, 3)
	if got := store.GetInt(KeyVideoQuality, 0); got != 3 {
		t.Errorf("Expected quality 3, got %d", got)
	}

	store.SetString(KeyTemplate, "%(id)s.%(ext)s")
	if got := store.GetString(KeyTemplate, ""); got != "%(id)s.%(ext)s" {
		t.Errorf("Expected template to round trip, got %s", got)
	}

	// Last write wins
	store.SetInt(KeyVideoQuality, 1)
	if got := store.GetInt(KeyVideoQuality, 0); got != 1 {
		t.Errorf("Expected quality 1, got %d", got)
	}
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)

	store.SetBool(KeyNotification, false)
	store.Remove(KeyNotification)

	if !store.Notification() {
		t.Error("Notification should be back to its default after Remove")
	}
}

func TestTypedDefaults(t *testing.T) {
	store := newTestStore(t)

	if store.VideoQuality() != model.VideoQualityBest {
		t.Errorf("Expected best quality, got %d", store.VideoQuality())
	}
	if store.VideoFormat() != model.VideoFormatUnspecified {
		t.Errorf("Expected unspecified format, got %d", store.VideoFormat())
	}
	if store.AudioFormat() != model.AudioFormatOriginal {
		t.Errorf("Expected original audio, got %d", store.AudioFormat())
	}
	if store.Language() != model.LanguageFollowSystem {
		t.Errorf("Expected follow-system language, got %d", store.Language())
	}
	if store.ConcurrentFragments() != DefaultConcurrentFragments {
		t.Errorf("Expected %d fragments, got %d", DefaultConcurrentFragments, store.ConcurrentFragments())
	}
	if store.Template() != DefaultTemplate {
		t.Errorf("Expected default template, got %s", store.Template())
	}
	if !store.Configure() || !store.Notification() || !store.WelcomeDialog() {
		t.Error("configure, notification and welcome dialog default to true")
	}
	if store.Debug() || store.Playlist() || store.ExtractAudio() || store.Thumbnail() ||
		store.Subdirectory() || store.CustomCommand() || store.OpenWhenFinish() {
		t.Error("remaining flags default to false")
	}
	if store.DarkTheme() != model.DarkThemeFollowSystem {
		t.Errorf("Expected follow-system dark theme, got %d", store.DarkTheme())
	}
	if store.SeedColor() != model.DefaultSeedColor {
		t.Errorf("Expected default seed %08X, got %08X", model.DefaultSeedColor, store.SeedColor())
	}
}

func TestVideoDirectory(t *testing.T) {
	store := newTestStore(t)

	// Default comes from the platform and is not stored by a read
	dir := store.VideoDirectory()
	if dir != "/home/test/Downloads" {
		t.Errorf("Expected platform downloads dir, got %s", dir)
	}
	if got := store.GetString(KeyVideoDirectory, ""); got != "" {
		t.Errorf("Read should not persist the default, got %q", got)
	}

	store.SetVideoDirectory("/custom/downloads")
	if got := store.VideoDirectory(); got != "/custom/downloads" {
		t.Errorf("Expected custom dir, got %s", got)
	}
}

func TestEnsureVideoDirectory(t *testing.T) {
	store := newTestStore(t)

	dir := store.EnsureVideoDirectory()
	if dir != "/home/test/Downloads" {
		t.Errorf("Expected platform downloads dir, got %s", dir)
	}
	if got := store.GetString(KeyVideoDirectory, ""); got != dir {
		t.Errorf("Default should be persisted, got %q", got)
	}

	store.SetVideoDirectory("/custom/downloads")
	if got := store.EnsureVideoDirectory(); got != "/custom/downloads" {
		t.Errorf("Stored dir should win, got %s", got)
	}
}

func TestSnapshotDoesNotWrite(t *testing.T) {
	store := newTestStore(t)

	entries := store.Snapshot()
	for _, e := range entries {
		if e.Key == KeyVideoDirectory {
			if e.Value != "/home/test/Downloads" || e.IsSet {
				t.Errorf("Unexpected download dir entry %+v", e)
			}
		}
	}
	if got := store.GetString(KeyVideoDirectory, ""); got != "" {
		t.Errorf("Snapshot persisted the download dir %q", got)
	}
}

func TestVideoDirectoryFallback(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app.Preferences(),
		WithLogger(logger.Discard()),
		WithDownloadsDir(func() (string, error) { return "", errors.New("no home") }),
	)

	if got := store.VideoDirectory(); got != fallbackDownloadDir {
		t.Errorf("Expected fallback dir %s, got %s", fallbackDownloadDir, got)
	}
}

func TestAudioDirectory(t *testing.T) {
	store := newTestStore(t)

	expected := filepath.Join("/home/test/Downloads", DefaultAudioSubdirectory)
	if got := store.AudioDirectory(); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}

	store.SetAudioDirectory("/music")
	if got := store.AudioDirectory(); got != "/music" {
		t.Errorf("Expected /music, got %s", got)
	}
}

func TestTemplate(t *testing.T) {
	store := newTestStore(t)

	store.SetTemplate("%(uploader)s - %(title)s.%(ext)s")
	if got := store.Template(); got != "%(uploader)s - %(title)s.%(ext)s" {
		t.Errorf("Unexpected template %s", got)
	}

	// Empty template defaults back
	store.SetTemplate("")
	if got := store.Template(); got != DefaultTemplate {
		t.Errorf("Empty template should default to %s, got %s", DefaultTemplate, got)
	}
}

func TestConcurrentFragments(t *testing.T) {
	store := newTestStore(t)

	store.SetConcurrentFragments(8)
	if got := store.ConcurrentFragments(); got != 8 {
		t.Errorf("Expected 8, got %d", got)
	}

	store.SetConcurrentFragments(0)
	if got := store.ConcurrentFragments(); got != model.FragmentsMin {
		t.Errorf("Should be clamped to %d, got %d", model.FragmentsMin, got)
	}

	store.SetConcurrentFragments(500)
	if got := store.ConcurrentFragments(); got != model.FragmentsMax {
		t.Errorf("Should be clamped to %d, got %d", model.FragmentsMax, got)
	}
}

func TestSeedColorStoredAsSigned32Bit(t *testing.T) {
	store := newTestStore(t)

	store.SetInt(KeyThemeColor, argbToInt(0xFF112233))
	if got := store.GetInt(KeyThemeColor, 0); got >= 0 {
		t.Errorf("Opaque colors are stored as negative 32-bit ints, got %d", got)
	}
	if got := store.SeedColor(); got != 0xFF112233 {
		t.Errorf("Expected FF112233, got %08X", got)
	}
}

func TestAppSettingsFromStore(t *testing.T) {
	store := newTestStore(t)
	store.SetInt(KeyDarkTheme, int(model.DarkThemeOff))

	settings := store.AppSettings()
	if settings.DarkTheme != model.DarkThemeOff {
		t.Errorf("Expected Off, got %d", settings.DarkTheme)
	}
	if settings.SeedColor != model.DefaultSeedColor {
		t.Errorf("Expected default seed color, got %08X", settings.SeedColor)
	}
}

func TestSnapshot(t *testing.T) {
	store := newTestStore(t)
	store.SetVideoQuality(model.VideoQuality1080p)

	entries := store.Snapshot()
	if len(entries) != len(Keys) {
		t.Fatalf("Expected %d entries, got %d", len(Keys), len(entries))
	}

	found := false
	for _, e := range entries {
		switch e.Key {
		case KeyVideoQuality:
			found = true
			if e.Value != int(model.VideoQuality1080p) || !e.IsSet {
				t.Errorf("Unexpected quality entry %+v", e)
			}
		case KeyPlaylist:
			if e.Value != false || e.IsSet {
				t.Errorf("Unexpected playlist entry %+v", e)
			}
		}
	}
	if !found {
		t.Error("Quality missing from snapshot")
	}
}

func TestLookupKey(t *testing.T) {
	spec, ok := LookupKey(KeyTemplate)
	if !ok || spec.Kind != KindString {
		t.Errorf("Expected template to be a known string key, got %+v", spec)
	}
	if _, ok := LookupKey("no_such_key"); ok {
		t.Error("Unknown key should not be found")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindBool, KindInt, KindString} {
		parsed, ok := ParseKind(k.String())
		if !ok || parsed != k {
			t.Errorf("ParseKind(%s) = %v, %v", k, parsed, ok)
		}
	}
	if _, ok := ParseKind("float"); ok {
		t.Error("float is not a supported kind")
	}
}
