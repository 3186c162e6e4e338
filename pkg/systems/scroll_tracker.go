package systems

// ScrollTracker converts an accumulated scroll offset into a smoothed
// progress value in [0, 1].
//
// Each frame the raw offset is normalized by the scrollable height and the
// smoothed value eases toward that target exponentially:
//
//	smoothed += (target - smoothed) * k
//
// The smoothing factor k is fixed per tracker instance.
type ScrollTracker struct {
	raw       float64
	maxScroll float64
	smoothing float64
	smoothed  float64
}

// DefaultSmoothing is the easing factor used when none is configured.
const DefaultSmoothing = 0.1

// NewScrollTracker creates a tracker over a scrollable height of maxScroll
// units. A smoothing factor outside (0, 1] falls back to DefaultSmoothing.
func NewScrollTracker(maxScroll, smoothing float64) *ScrollTracker {
	if smoothing <= 0 || smoothing > 1 {
		smoothing = DefaultSmoothing
	}
	return &ScrollTracker{
		maxScroll: maxScroll,
		smoothing: smoothing,
	}
}

// Scroll accumulates a raw scroll delta, clamped to [0, maxScroll].
func (st *ScrollTracker) Scroll(delta float64) {
	st.raw += delta
	if st.raw < 0 {
		st.raw = 0
	}
	if st.raw > st.maxScroll {
		st.raw = st.maxScroll
	}
}

// SetMaxScroll updates the scrollable height, re-clamping the raw offset.
// Used when the window is resized.
func (st *ScrollTracker) SetMaxScroll(maxScroll float64) {
	st.maxScroll = maxScroll
	if st.raw > st.maxScroll {
		st.raw = st.maxScroll
	}
}

// Update advances the smoothed progress one frame toward the normalized
// target. A zero scrollable height defines the target as 0.
func (st *ScrollTracker) Update() {
	target := 0.0
	if st.maxScroll > 0 {
		target = st.raw / st.maxScroll
	}
	st.smoothed += (target - st.smoothed) * st.smoothing
}

// Progress returns the current smoothed progress in [0, 1].
func (st *ScrollTracker) Progress() float64 {
	return st.smoothed
}

// Raw returns the unsmoothed scroll offset.
func (st *ScrollTracker) Raw() float64 {
	return st.raw
}

// JumpTo moves both the raw offset and the smoothed progress directly to
// the given progress fraction, bypassing easing. Used by hotspot navigation.
func (st *ScrollTracker) JumpTo(progress float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	st.raw = progress * st.maxScroll
	st.smoothed = progress
}
