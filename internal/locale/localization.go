package locale

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/ytget/yt-settings/internal/model"
)

// Localization manages display text translations
type Localization struct {
	current language.Tag
	texts   map[language.Tag]map[string]string
}

// Text keys for localization
const (
	KeyBestQuality  = "best_quality"
	KeyNotSpecified = "not_specified"
	KeyNotConvert   = "not_convert"
	KeyConvertTo    = "convert_to"
	KeyDefaults     = "defaults"
	KeyLanguageZhCN = "la_zh_CN"
	KeyLanguageEnUS = "la_en_US"
	KeyFollowSystem = "follow_system"
	KeyOn           = "on"
	KeyOff          = "off"
	KeyEnabled      = "enabled"
	KeyDisabled     = "disabled"
	KeyDarkTheme    = "dark_theme"
	KeySeedColor    = "seed_color"
)

// Supported catalogs. The first entry is the fallback.
var supported = []language.Tag{language.English, language.SimplifiedChinese}

var matcher = language.NewMatcher(supported)

// NewLocalization creates a localization using English
func NewLocalization() *Localization {
	l := &Localization{
		current: language.English,
		texts:   make(map[language.Tag]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage selects the catalog for a language code. Follow-system uses
// the given system tag; anything without a close match ends up English.
func (l *Localization) SetLanguage(code model.Language, system language.Tag) {
	tag := code.Tag()
	if tag == language.Und {
		tag = system
	}
	l.SetTag(tag)
}

// SetTag selects the closest supported catalog for tag
func (l *Localization) SetTag(tag language.Tag) {
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		l.current = supported[0]
		return
	}
	l.current = supported[idx]
}

// CurrentTag returns the tag of the active catalog
func (l *Localization) CurrentTag() language.Tag {
	return l.current
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.current]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if text, found := l.texts[language.English][key]; found {
		return text
	}

	// Final fallback - return key itself
	return key
}

// VideoQualityDesc returns the label for a quality code, such as "1080p".
// Unknown codes get the best-quality label.
func (l *Localization) VideoQualityDesc(q model.VideoQuality) string {
	if q.IsBest() {
		return l.GetText(KeyBestQuality)
	}
	return q.Resolution()
}

// VideoFormatDesc returns the container name for a format code
func (l *Localization) VideoFormatDesc(f model.VideoFormat) string {
	switch f.Container() {
	case "mp4":
		return "MP4"
	case "webm":
		return "WebM"
	default:
		return l.GetText(KeyNotSpecified)
	}
}

// AudioFormatDesc describes the audio conversion for a format code
func (l *Localization) AudioFormatDesc(f model.AudioFormat) string {
	if !f.Converts() {
		return l.GetText(KeyNotConvert)
	}
	return fmt.Sprintf(l.GetText(KeyConvertTo), f.Codec())
}

// LanguageDesc returns the language name for a language code
func (l *Localization) LanguageDesc(code model.Language) string {
	switch code {
	case model.LanguageSimplifiedChinese:
		return l.GetText(KeyLanguageZhCN)
	case model.LanguageEnglish:
		return l.GetText(KeyLanguageEnUS)
	default:
		return l.GetText(KeyDefaults)
	}
}

// DarkThemeDesc describes a dark theme preference
func (l *Localization) DarkThemeDesc(p model.DarkThemePreference) string {
	switch p {
	case model.DarkThemeFollowSystem:
		return l.GetText(KeyFollowSystem)
	case model.DarkThemeOn:
		return l.GetText(KeyOn)
	default:
		return l.GetText(KeyOff)
	}
}

// BoolDesc describes a switch setting
func (l *Localization) BoolDesc(v bool) string {
	if v {
		return l.GetText(KeyEnabled)
	}
	return l.GetText(KeyDisabled)
}

// SystemTag reads the process locale from LC_ALL, LC_MESSAGES or LANG.
// It returns language.Und when none is set or parsable.
func SystemTag() language.Tag {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(name)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		// en_US.UTF-8@euro -> en-US
		if i := strings.IndexAny(value, ".@"); i >= 0 {
			value = value[:i]
		}
		tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
		if err == nil {
			return tag
		}
	}
	return language.Und
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts[language.English] = map[string]string{
		KeyBestQuality:  "Best quality",
		KeyNotSpecified: "Not specified",
		KeyNotConvert:   "Not converted",
		KeyConvertTo:    "Convert to %s",
		KeyDefaults:     "Default",
		KeyLanguageZhCN: "简体中文",
		KeyLanguageEnUS: "English",
		KeyFollowSystem: "Follow system",
		KeyOn:           "On",
		KeyOff:          "Off",
		KeyEnabled:      "Enabled",
		KeyDisabled:     "Disabled",
		KeyDarkTheme:    "Dark theme",
		KeySeedColor:    "Seed color",
	}

	// Simplified Chinese texts
	l.texts[language.SimplifiedChinese] = map[string]string{
		KeyBestQuality:  "最佳画质",
		KeyNotSpecified: "未指定",
		KeyNotConvert:   "不转换",
		KeyConvertTo:    "转换为 %s",
		KeyDefaults:     "默认",
		KeyLanguageZhCN: "简体中文",
		KeyLanguageEnUS: "English",
		KeyFollowSystem: "跟随系统",
		KeyOn:           "开启",
		KeyOff:          "关闭",
		KeyEnabled:      "已开启",
		KeyDisabled:     "已关闭",
		KeyDarkTheme:    "深色主题",
		KeySeedColor:    "主题色",
	}
}
