package model

// Concurrent fragment levels offered by the settings slider
const (
	FragmentsMin = 1
	FragmentsMax = 24
)

var fragmentSteps = []struct {
	level  int
	slider float32
}{
	{1, 0},
	{4, 0.25},
	{8, 0.5},
	{12, 0.75},
	{FragmentsMax, 1},
}

// FragmentsSlider maps a concurrent fragment level to a slider position in [0, 1].
// Levels off the slider steps map to the far end.
func FragmentsSlider(level int) float32 {
	for _, s := range fragmentSteps {
		if s.level == level {
			return s.slider
		}
	}
	return 1
}

// FragmentsFromSlider maps a slider position back to the nearest fragment level
func FragmentsFromSlider(pos float32) int {
	best := fragmentSteps[0]
	bestDist := float32(2)
	for _, s := range fragmentSteps {
		d := s.slider - pos
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = s, d
		}
	}
	return best.level
}

// ClampFragments bounds a fragment level to [FragmentsMin, FragmentsMax]
func ClampFragments(level int) int {
	if level < FragmentsMin {
		return FragmentsMin
	}
	if level > FragmentsMax {
		return FragmentsMax
	}
	return level
}
