package theme

import (
	"math"
	"testing"
)

func testThemes() []Theme {
	// Distinct primaries so blending is observable per channel.
	return []Theme{
		{
			Name:       "hero",
			Primary:    MustHex("#000000"),
			Secondary:  MustHex("#C0C0C0"),
			Accent:     MustHex("#FFFFFF"),
			Background: MustHex("#0D0D0D"),
		},
		{
			Name:       "blackRose",
			Primary:    MustHex("#8B4049"),
			Secondary:  MustHex("#C9356C"),
			Accent:     MustHex("#FF6B9D"),
			Background: MustHex("#1A0A0F"),
		},
		{
			Name:       "loveHurts",
			Primary:    MustHex("#C9A962"),
			Secondary:  MustHex("#FFD700"),
			Accent:     MustHex("#000000"),
			Background: MustHex("#0A0A0A"),
		},
	}
}

func TestBlendAtEdges(t *testing.T) {
	themes := testThemes()
	in := NewInterpolator(themes)

	t.Run("progress zero returns first theme", func(t *testing.T) {
		got := in.BlendAt(0)
		if got != themes[0] {
			t.Errorf("BlendAt(0) = %+v, want %+v", got, themes[0])
		}
	})

	t.Run("progress one returns last theme", func(t *testing.T) {
		got := in.BlendAt(1)
		if got != themes[2] {
			t.Errorf("BlendAt(1) = %+v, want %+v", got, themes[2])
		}
	})

	t.Run("out of range clamps", func(t *testing.T) {
		if got := in.BlendAt(-0.5); got != themes[0] {
			t.Errorf("BlendAt(-0.5) = %+v, want first theme", got)
		}
		if got := in.BlendAt(1.5); got != themes[2] {
			t.Errorf("BlendAt(1.5) = %+v, want last theme", got)
		}
	})
}

func TestBlendAtSegmentMidpoint(t *testing.T) {
	themes := testThemes()
	in := NewInterpolator(themes)

	// Three themes -> two segments; 0.125 is the quarter point of [0,1],
	// which is the midpoint of the first segment [0, 0.5].
	got := in.BlendAt(0.25)
	want := themes[0].Primary.Lerp(themes[1].Primary, 0.5)
	if !colorsClose(got.Primary, want) {
		t.Errorf("midpoint primary = %+v, want mean %+v", got.Primary, want)
	}

	// Each channel must be the arithmetic mean of the bounding themes.
	mean := Color{
		R: (themes[0].Primary.R + themes[1].Primary.R) / 2,
		G: (themes[0].Primary.G + themes[1].Primary.G) / 2,
		B: (themes[0].Primary.B + themes[1].Primary.B) / 2,
	}
	if !colorsClose(got.Primary, mean) {
		t.Errorf("midpoint primary = %+v, want arithmetic mean %+v", got.Primary, mean)
	}
}

func TestBlendAtMonotonicWithinSegment(t *testing.T) {
	themes := testThemes()
	in := NewInterpolator(themes)

	// Within segment 0 the primary red channel rises from 0x00 to 0x8B.
	prev := -1.0
	for p := 0.0; p <= 0.5+1e-9; p += 0.05 {
		r := in.BlendAt(p).Primary.R
		if r < prev-1e-12 {
			t.Fatalf("primary.R not monotonic at p=%.2f: %.6f < %.6f", p, r, prev)
		}
		prev = r
	}
}

func TestBlendAtPure(t *testing.T) {
	in := NewInterpolator(testThemes())
	for p := 0.0; p <= 1.0+1e-9; p += 0.1 {
		a := in.BlendAt(p)
		b := in.BlendAt(p)
		if a != b {
			t.Fatalf("BlendAt(%.1f) not deterministic: %+v vs %+v", p, a, b)
		}
	}
}

func TestBlendAtDegenerate(t *testing.T) {
	t.Run("single theme", func(t *testing.T) {
		only := testThemes()[:1]
		in := NewInterpolator(only)
		for _, p := range []float64{0, 0.3, 1} {
			if got := in.BlendAt(p); got != only[0] {
				t.Errorf("BlendAt(%.1f) = %+v, want the only theme", p, got)
			}
		}
	})

	t.Run("empty list", func(t *testing.T) {
		in := NewInterpolator(nil)
		if got := in.BlendAt(0.5); got != (Theme{}) {
			t.Errorf("BlendAt on empty list = %+v, want zero theme", got)
		}
	})
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FFFFFF", Color{1, 1, 1}, false},
		{"#000000", Color{0, 0, 0}, false},
		{"C9A962", Color{0xC9 / 255.0, 0xA9 / 255.0, 0x62 / 255.0}, false},
		{"#fff", Color{}, true},
		{"not-a-color", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && !colorsClose(got, tt.want) {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#000000", "#C9A962", "#FF6B9D", "#FFFFFF"} {
		c, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q) failed: %v", s, err)
		}
		if got := c.Hex(); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func colorsClose(a, b Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}
