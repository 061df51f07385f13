package model

// VideoFormat is the persisted code for the preferred video container
type VideoFormat int

const (
	// VideoFormatUnspecified keeps whatever container yt-dlp produces
	VideoFormatUnspecified VideoFormat = 0
	VideoFormatMP4         VideoFormat = 1
	VideoFormatWebM        VideoFormat = 2
)

// VideoFormats lists the selectable containers in display order
var VideoFormats = []VideoFormat{VideoFormatUnspecified, VideoFormatMP4, VideoFormatWebM}

// Container returns the container extension, or "" when unspecified.
// Unknown codes are treated as unspecified.
func (f VideoFormat) Container() string {
	switch f {
	case VideoFormatMP4:
		return "mp4"
	case VideoFormatWebM:
		return "webm"
	default:
		return ""
	}
}

// AudioFormat is the persisted code for audio post-processing
type AudioFormat int

const (
	// AudioFormatOriginal keeps the downloaded audio stream as is
	AudioFormatOriginal AudioFormat = 0
	AudioFormatMP3      AudioFormat = 1
	AudioFormatM4A      AudioFormat = 2
)

// AudioFormats lists the selectable audio conversions in display order
var AudioFormats = []AudioFormat{AudioFormatOriginal, AudioFormatMP3, AudioFormatM4A}

// Converts reports whether audio is converted after download
func (f AudioFormat) Converts() bool {
	return f != AudioFormatOriginal
}

// Codec returns the target codec, or "" when no conversion happens.
// Any unknown non-zero code converts to m4a.
func (f AudioFormat) Codec() string {
	switch f {
	case AudioFormatOriginal:
		return ""
	case AudioFormatMP3:
		return "mp3"
	default:
		return "m4a"
	}
}
