package config

import (
	"log/slog"
	"path/filepath"

	"github.com/ytget/yt-settings/internal/logger"
	"github.com/ytget/yt-settings/internal/model"
	"github.com/ytget/yt-settings/internal/platform"
)

// Store manages application preferences on top of a Backend
type Store struct {
	prefs        Backend
	log          *slog.Logger
	downloadsDir func() (string, error)
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for write tracing and backend warnings
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithDownloadsDir overrides how the default video directory is resolved
func WithDownloadsDir(fn func() (string, error)) Option {
	return func(s *Store) {
		s.downloadsDir = fn
	}
}

// NewStore creates a store writing through prefs
func NewStore(prefs Backend, opts ...Option) *Store {
	s := &Store{
		prefs:        prefs,
		log:          logger.DefaultLogger(),
		downloadsDir: platform.GetHomeDownloadsDir,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetBool returns the bool stored under key, or def when unset
func (s *Store) GetBool(key string, def bool) bool {
	return s.prefs.BoolWithFallback(key, def)
}

// SetBool persists a bool under key
func (s *Store) SetBool(key string, value bool) {
	s.prefs.SetBool(key, value)
	s.log.Debug("preference updated", "key", key, "value", value)
}

// GetInt returns the int stored under key, or def when unset
func (s *Store) GetInt(key string, def int) int {
	return s.prefs.IntWithFallback(key, def)
}

// SetInt persists an int under key
func (s *Store) SetInt(key string, value int) {
	s.prefs.SetInt(key, value)
	s.log.Debug("preference updated", "key", key, "value", value)
}

// GetString returns the string stored under key, or def when unset
func (s *Store) GetString(key, def string) string {
	return s.prefs.StringWithFallback(key, def)
}

// SetString persists a string under key
func (s *Store) SetString(key, value string) {
	s.prefs.SetString(key, value)
	s.log.Debug("preference updated", "key", key, "value", value)
}

// Remove deletes key so the next read yields its default
func (s *Store) Remove(key string) {
	s.prefs.RemoveValue(key)
	s.log.Debug("preference removed", "key", key)
}

// VideoDirectory returns the download directory, or the platform Downloads
// directory when none is stored. It does not write.
func (s *Store) VideoDirectory() string {
	if dir := s.GetString(KeyVideoDirectory, ""); dir != "" {
		return dir
	}
	return s.defaultVideoDirectory()
}

// EnsureVideoDirectory stores the platform default as the download
// directory on first use and returns the effective directory
func (s *Store) EnsureVideoDirectory() string {
	if dir := s.GetString(KeyVideoDirectory, ""); dir != "" {
		return dir
	}
	dir := s.defaultVideoDirectory()
	s.SetVideoDirectory(dir)
	return dir
}

func (s *Store) defaultVideoDirectory() string {
	dir, err := s.downloadsDir()
	if err != nil || dir == "" {
		s.log.Warn("downloads dir unavailable, using fallback", "err", err, "dir", fallbackDownloadDir)
		return fallbackDownloadDir
	}
	return dir
}

// SetVideoDirectory sets the download directory
func (s *Store) SetVideoDirectory(dir string) {
	s.SetString(KeyVideoDirectory, dir)
}

// AudioDirectory returns the directory for extracted audio, by default an
// Audio folder inside the video directory
func (s *Store) AudioDirectory() string {
	if dir := s.GetString(KeyAudioDirectory, ""); dir != "" {
		return dir
	}
	return filepath.Join(s.VideoDirectory(), DefaultAudioSubdirectory)
}

// SetAudioDirectory sets the directory for extracted audio
func (s *Store) SetAudioDirectory(dir string) {
	s.SetString(KeyAudioDirectory, dir)
}

// Template returns the yt-dlp output template
func (s *Store) Template() string {
	return s.GetString(KeyTemplate, DefaultTemplate)
}

// SetTemplate sets the output template. An empty template restores the default.
func (s *Store) SetTemplate(template string) {
	if template == "" {
		template = DefaultTemplate
	}
	s.SetString(KeyTemplate, template)
}

// VideoQuality returns the preferred resolution code
func (s *Store) VideoQuality() model.VideoQuality {
	return model.VideoQuality(s.GetInt(KeyVideoQuality, int(model.VideoQualityBest)))
}

// SetVideoQuality sets the preferred resolution code
func (s *Store) SetVideoQuality(q model.VideoQuality) {
	s.SetInt(KeyVideoQuality, int(q))
}

// VideoFormat returns the preferred container code
func (s *Store) VideoFormat() model.VideoFormat {
	return model.VideoFormat(s.GetInt(KeyVideoFormat, int(model.VideoFormatUnspecified)))
}

// SetVideoFormat sets the preferred container code
func (s *Store) SetVideoFormat(f model.VideoFormat) {
	s.SetInt(KeyVideoFormat, int(f))
}

// AudioFormat returns the audio conversion code
func (s *Store) AudioFormat() model.AudioFormat {
	return model.AudioFormat(s.GetInt(KeyAudioFormat, int(model.AudioFormatOriginal)))
}

// SetAudioFormat sets the audio conversion code
func (s *Store) SetAudioFormat(f model.AudioFormat) {
	s.SetInt(KeyAudioFormat, int(f))
}

// Language returns the UI language code
func (s *Store) Language() model.Language {
	return model.Language(s.GetInt(KeyLanguage, int(model.LanguageFollowSystem)))
}

// SetLanguage sets the UI language code
func (s *Store) SetLanguage(l model.Language) {
	s.SetInt(KeyLanguage, int(l))
}

// ConcurrentFragments returns how many fragments yt-dlp downloads at once
func (s *Store) ConcurrentFragments() int {
	return s.GetInt(KeyConcurrentFragments, DefaultConcurrentFragments)
}

// SetConcurrentFragments sets the fragment concurrency, clamped to the supported range
func (s *Store) SetConcurrentFragments(level int) {
	s.SetInt(KeyConcurrentFragments, model.ClampFragments(level))
}

// ExtractAudio reports whether downloads keep only the audio track
func (s *Store) ExtractAudio() bool {
	return s.GetBool(KeyExtractAudio, false)
}

// SetExtractAudio sets whether downloads keep only the audio track
func (s *Store) SetExtractAudio(v bool) {
	s.SetBool(KeyExtractAudio, v)
}

// Thumbnail reports whether thumbnails are written next to downloads
func (s *Store) Thumbnail() bool {
	return s.GetBool(KeyThumbnail, false)
}

// SetThumbnail sets whether thumbnails are written next to downloads
func (s *Store) SetThumbnail(v bool) {
	s.SetBool(KeyThumbnail, v)
}

// Subdirectory reports whether downloads are sorted into per-uploader folders
func (s *Store) Subdirectory() bool {
	return s.GetBool(KeySubdirectory, false)
}

// Playlist reports whether playlist URLs download every entry
func (s *Store) Playlist() bool {
	return s.GetBool(KeyPlaylist, false)
}

// CustomCommand reports whether the user-defined yt-dlp command replaces the built-in options
func (s *Store) CustomCommand() bool {
	return s.GetBool(KeyCustomCommand, false)
}

// Configure reports whether the options sheet is shown before each download
func (s *Store) Configure() bool {
	return s.GetBool(KeyConfigure, DefaultConfigure)
}

// OpenWhenFinish reports whether finished files are opened automatically
func (s *Store) OpenWhenFinish() bool {
	return s.GetBool(KeyOpenWhenFinish, false)
}

// Notification reports whether download notifications are shown
func (s *Store) Notification() bool {
	return s.GetBool(KeyNotification, DefaultNotification)
}

// Debug reports whether verbose yt-dlp output and command tracing are enabled
func (s *Store) Debug() bool {
	return s.GetBool(KeyDebug, false)
}

// WelcomeDialog reports whether the first-run dialog is still pending
func (s *Store) WelcomeDialog() bool {
	return s.GetBool(KeyWelcomeDialog, DefaultWelcomeDialog)
}

// DarkTheme returns the persisted dark mode preference
func (s *Store) DarkTheme() model.DarkThemePreference {
	return model.DarkThemePreference(s.GetInt(KeyDarkTheme, int(model.DarkThemeFollowSystem)))
}

// SetDarkTheme persists the dark mode preference. UI code should go through
// AppSettingsCell so observers see the change.
func (s *Store) SetDarkTheme(p model.DarkThemePreference) {
	s.SetInt(KeyDarkTheme, int(p))
}

// SeedColor returns the persisted ARGB seed color
func (s *Store) SeedColor() uint32 {
	return intToARGB(s.GetInt(KeyThemeColor, argbToInt(model.DefaultSeedColor)))
}

// SetSeedColor persists the ARGB seed color. UI code should go through
// AppSettingsCell so observers see the change.
func (s *Store) SetSeedColor(argb uint32) {
	s.SetInt(KeyThemeColor, argbToInt(argb))
}

// argbToInt stores colors as signed 32-bit values so the layout is the same on every platform
func argbToInt(argb uint32) int {
	return int(int32(argb))
}

func intToARGB(v int) uint32 {
	return uint32(int32(v))
}

// AppSettings reads the appearance aggregate from the persisted values
func (s *Store) AppSettings() model.AppSettings {
	return model.AppSettings{
		DarkTheme: s.DarkTheme(),
		SeedColor: s.SeedColor(),
	}
}

// Entry is one key with its effective value
type Entry struct {
	KeySpec
	Value any
	IsSet bool
}

// Snapshot returns every known key with its effective value, in Keys order
func (s *Store) Snapshot() []Entry {
	entries := make([]Entry, 0, len(Keys))
	for _, spec := range Keys {
		entries = append(entries, Entry{
			KeySpec: spec,
			Value:   s.Value(spec),
			IsSet:   s.isSet(spec),
		})
	}
	return entries
}

// Value returns the effective value of a known key
func (s *Store) Value(spec KeySpec) any {
	if spec.resolve != nil {
		return spec.resolve(s)
	}
	switch spec.Kind {
	case KindBool:
		return s.GetBool(spec.Key, spec.Default.(bool))
	case KindInt:
		return s.GetInt(spec.Key, spec.Default.(int))
	default:
		return s.GetString(spec.Key, spec.Default.(string))
	}
}

// isSet probes the backend with two different fallbacks; a stored value
// returns the same answer for both.
func (s *Store) isSet(spec KeySpec) bool {
	switch spec.Kind {
	case KindBool:
		return s.GetBool(spec.Key, true) == s.GetBool(spec.Key, false)
	case KindInt:
		return s.GetInt(spec.Key, 0) == s.GetInt(spec.Key, 1)
	default:
		return s.GetString(spec.Key, "") == s.GetString(spec.Key, "\x00")
	}
}
