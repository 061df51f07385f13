package config

import (
	"github.com/ytget/yt-settings/internal/model"
)

// AppID identifies the application's preferences namespace
const AppID = "com.ytget.yt-settings"

// Preference keys. The names are part of the persisted layout; never rename.
const (
	KeyCustomCommand       = "custom_command"
	KeyConcurrentFragments = "concurrent_fragments"
	KeyExtractAudio        = "extract_audio"
	KeyThumbnail           = "create_thumbnail"
	KeyTemplate            = "template"
	KeyOpenWhenFinish      = "open_when_finish"
	KeyYtDlpInit           = "yt-dlp_init"
	KeyDebug               = "debug"
	KeyConfigure           = "configure"
	KeyDarkTheme           = "dark_theme_value"
	KeyAudioFormat         = "audio_format"
	KeyVideoFormat         = "video_format"
	KeyVideoQuality        = "quality"
	KeyWelcomeDialog       = "welcome_dialog"
	KeyVideoDirectory      = "download_dir"
	KeyAudioDirectory      = "audio_dir"
	KeySubdirectory        = "sub-directory"
	KeyPlaylist            = "playlist"
	KeyLanguage            = "language"
	KeyNotification        = "notification"
	KeyThemeColor          = "theme_color"
)

// Default values
const (
	DefaultTemplate            = "%(title)s.%(ext)s"
	DefaultConcurrentFragments = 1
	DefaultConfigure           = true
	DefaultWelcomeDialog       = true
	DefaultNotification        = true
	DefaultAudioSubdirectory   = "Audio"

	// fallbackDownloadDir is used when the platform Downloads directory cannot be resolved
	fallbackDownloadDir = "/tmp/downloads"
)

// Kind is the value type stored under a key
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindString
)

// String returns the name used by the CLI --type flag
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "bool":
		return KindBool, true
	case "int":
		return KindInt, true
	case "string":
		return KindString, true
	default:
		return 0, false
	}
}

// KeySpec describes one known preference
type KeySpec struct {
	Key     string
	Kind    Kind
	Default any

	// resolve computes the effective value when the default depends on other state
	resolve func(s *Store) any
}

// Keys lists every known preference in display order
var Keys = []KeySpec{
	{Key: KeyVideoDirectory, Kind: KindString, Default: "", resolve: func(s *Store) any { return s.VideoDirectory() }},
	{Key: KeyAudioDirectory, Kind: KindString, Default: "", resolve: func(s *Store) any { return s.AudioDirectory() }},
	{Key: KeySubdirectory, Kind: KindBool, Default: false},
	{Key: KeyTemplate, Kind: KindString, Default: DefaultTemplate},
	{Key: KeyVideoQuality, Kind: KindInt, Default: int(model.VideoQualityBest)},
	{Key: KeyVideoFormat, Kind: KindInt, Default: int(model.VideoFormatUnspecified)},
	{Key: KeyAudioFormat, Kind: KindInt, Default: int(model.AudioFormatOriginal)},
	{Key: KeyExtractAudio, Kind: KindBool, Default: false},
	{Key: KeyThumbnail, Kind: KindBool, Default: false},
	{Key: KeyConcurrentFragments, Kind: KindInt, Default: DefaultConcurrentFragments},
	{Key: KeyPlaylist, Kind: KindBool, Default: false},
	{Key: KeyCustomCommand, Kind: KindBool, Default: false},
	{Key: KeyConfigure, Kind: KindBool, Default: DefaultConfigure},
	{Key: KeyOpenWhenFinish, Kind: KindBool, Default: false},
	{Key: KeyNotification, Kind: KindBool, Default: DefaultNotification},
	{Key: KeyDebug, Kind: KindBool, Default: false},
	{Key: KeyYtDlpInit, Kind: KindBool, Default: false},
	{Key: KeyWelcomeDialog, Kind: KindBool, Default: DefaultWelcomeDialog},
	{Key: KeyLanguage, Kind: KindInt, Default: int(model.LanguageFollowSystem)},
	{Key: KeyDarkTheme, Kind: KindInt, Default: int(model.DarkThemeFollowSystem)},
	{Key: KeyThemeColor, Kind: KindInt, Default: argbToInt(model.DefaultSeedColor)},
}

// LookupKey returns the spec of a known key
func LookupKey(key string) (KeySpec, bool) {
	for _, spec := range Keys {
		if spec.Key == key {
			return spec, true
		}
	}
	return KeySpec{}, false
}
