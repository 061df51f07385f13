package model

import "golang.org/x/text/language"

// Language is the persisted code for the UI language
type Language int

const (
	// LanguageFollowSystem uses the system locale
	LanguageFollowSystem      Language = 0
	LanguageSimplifiedChinese Language = 1
	LanguageEnglish           Language = 2
)

// Languages lists the selectable languages in display order
var Languages = []Language{LanguageFollowSystem, LanguageSimplifiedChinese, LanguageEnglish}

// Tag returns the BCP 47 tag for the language. Follow-system and unknown
// codes return language.Und.
func (l Language) Tag() language.Tag {
	switch l {
	case LanguageSimplifiedChinese:
		return language.MustParse("zh-CN")
	case LanguageEnglish:
		return language.AmericanEnglish
	default:
		return language.Und
	}
}

// Configuration returns the locale string applied to the app, "" to follow the system
func (l Language) Configuration() string {
	tag := l.Tag()
	if tag == language.Und {
		return ""
	}
	return tag.String()
}
