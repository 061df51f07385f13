package download

import (
	"github.com/ytget/yt-settings/internal/model"
)

// SettingsReader is the part of the settings store download options are built from
type SettingsReader interface {
	VideoDirectory() string
	AudioDirectory() string
	Template() string
	VideoQuality() model.VideoQuality
	VideoFormat() model.VideoFormat
	AudioFormat() model.AudioFormat
	ExtractAudio() bool
	Thumbnail() bool
	Subdirectory() bool
	Playlist() bool
	ConcurrentFragments() int
	Debug() bool
}
