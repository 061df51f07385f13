package model

import "fmt"

// VideoQuality is the persisted code for the preferred video resolution
type VideoQuality int

const (
	// VideoQualityBest lets yt-dlp pick the best available stream
	VideoQualityBest VideoQuality = 0

	// VideoQuality1440p caps the video stream at 1440 lines
	VideoQuality1440p VideoQuality = 1

	// VideoQuality1080p caps the video stream at 1080 lines
	VideoQuality1080p VideoQuality = 2

	// VideoQuality720p caps the video stream at 720 lines
	VideoQuality720p VideoQuality = 3

	// VideoQuality480p caps the video stream at 480 lines
	VideoQuality480p VideoQuality = 4
)

// VideoQualities lists the selectable qualities in display order
var VideoQualities = []VideoQuality{
	VideoQualityBest,
	VideoQuality1440p,
	VideoQuality1080p,
	VideoQuality720p,
	VideoQuality480p,
}

// Height returns the maximum frame height for the quality, or 0 for best.
// Unknown codes are treated as best.
func (q VideoQuality) Height() int {
	switch q {
	case VideoQuality1440p:
		return 1440
	case VideoQuality1080p:
		return 1080
	case VideoQuality720p:
		return 720
	case VideoQuality480p:
		return 480
	default:
		return 0
	}
}

// IsBest reports whether the code resolves to the best-quality fallback
func (q VideoQuality) IsBest() bool {
	return q.Height() == 0
}

// Resolution returns the resolution label such as "1080p", or "" for best
func (q VideoQuality) Resolution() string {
	if q.IsBest() {
		return ""
	}
	return fmt.Sprintf("%dp", q.Height())
}

// FormatSelector returns the yt-dlp -f expression for the quality
func (q VideoQuality) FormatSelector() string {
	if q.IsBest() {
		return "bestvideo+bestaudio/best"
	}
	h := q.Height()
	return fmt.Sprintf("bestvideo[height<=%d]+bestaudio/best[height<=%d]", h, h)
}
