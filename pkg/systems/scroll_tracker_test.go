package systems

import (
	"math"
	"testing"
)

func TestScrollTrackerConverges(t *testing.T) {
	st := NewScrollTracker(1000, 0.1)
	st.Scroll(500)

	for i := 0; i < 300; i++ {
		st.Update()
	}

	if got := st.Progress(); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("Progress() = %.6f, want convergence to 0.5", got)
	}
}

func TestScrollTrackerClamping(t *testing.T) {
	st := NewScrollTracker(1000, 0.1)

	st.Scroll(-400)
	if st.Raw() != 0 {
		t.Errorf("Raw() = %.1f after negative scroll, want 0", st.Raw())
	}

	st.Scroll(5000)
	if st.Raw() != 1000 {
		t.Errorf("Raw() = %.1f after overscroll, want 1000", st.Raw())
	}
}

func TestScrollTrackerZeroHeight(t *testing.T) {
	// A zero scrollable height defines the target as 0; no division by zero.
	st := NewScrollTracker(0, 0.1)
	st.Scroll(100)
	for i := 0; i < 10; i++ {
		st.Update()
	}
	if got := st.Progress(); got != 0 {
		t.Errorf("Progress() = %.6f with zero height, want 0", got)
	}
}

func TestScrollTrackerSmoothingMonotonic(t *testing.T) {
	st := NewScrollTracker(100, 0.12)
	st.Scroll(100)

	prev := st.Progress()
	for i := 0; i < 50; i++ {
		st.Update()
		cur := st.Progress()
		if cur < prev {
			t.Fatalf("smoothed progress regressed: %.6f -> %.6f", prev, cur)
		}
		if cur > 1 {
			t.Fatalf("smoothed progress overshot 1: %.6f", cur)
		}
		prev = cur
	}
}

func TestScrollTrackerDefaultSmoothing(t *testing.T) {
	st := NewScrollTracker(100, 0)
	st.Scroll(100)
	st.Update()
	if got := st.Progress(); math.Abs(got-DefaultSmoothing) > 1e-9 {
		t.Errorf("first Update moved progress to %.3f, want %.3f", got, DefaultSmoothing)
	}
}

func TestScrollTrackerResize(t *testing.T) {
	st := NewScrollTracker(1000, 0.1)
	st.Scroll(800)
	st.SetMaxScroll(500)
	if st.Raw() != 500 {
		t.Errorf("Raw() = %.1f after shrink, want re-clamp to 500", st.Raw())
	}
}

func TestScrollTrackerJumpTo(t *testing.T) {
	st := NewScrollTracker(1000, 0.1)
	st.JumpTo(0.75)
	if got := st.Progress(); got != 0.75 {
		t.Errorf("Progress() = %.3f after JumpTo, want 0.75", got)
	}
	if got := st.Raw(); got != 750 {
		t.Errorf("Raw() = %.1f after JumpTo, want 750", got)
	}
	st.JumpTo(2)
	if got := st.Progress(); got != 1 {
		t.Errorf("JumpTo does not clamp: %.3f", got)
	}
}
