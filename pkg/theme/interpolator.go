package theme

// Interpolator blends an ordered list of themes by scroll progress.
//
// Progress [0, 1] is partitioned into len(themes)-1 equal segments; within
// the active segment each channel is blended linearly between the two
// bounding themes. BlendAt is pure: identical input always produces
// identical output.
type Interpolator struct {
	themes []Theme
}

// NewInterpolator creates an interpolator over the given ordered themes.
// The slice is copied; callers may reuse or mutate theirs afterwards.
// At least one theme is required; with a single theme every progress value
// returns that theme unmodified.
func NewInterpolator(themes []Theme) *Interpolator {
	cp := make([]Theme, len(themes))
	copy(cp, themes)
	return &Interpolator{themes: cp}
}

// Themes returns the number of themes in the list.
func (in *Interpolator) Themes() int {
	return len(in.themes)
}

// BlendAt returns the blended palette for progress p.
// p <= 0 returns the first theme unmodified; p >= 1 returns the last.
// The blend's Name is the name of the segment's lower theme.
func (in *Interpolator) BlendAt(p float64) Theme {
	n := len(in.themes)
	if n == 0 {
		return Theme{}
	}
	if n == 1 || p <= 0 {
		return in.themes[0]
	}
	if p >= 1 {
		return in.themes[n-1]
	}

	segWidth := 1.0 / float64(n-1)
	seg := int(p / segWidth)
	if seg > n-2 {
		seg = n - 2
	}
	t := (p - float64(seg)*segWidth) / segWidth

	lo, hi := in.themes[seg], in.themes[seg+1]
	return Theme{
		Name:       lo.Name,
		Primary:    lo.Primary.Lerp(hi.Primary, t),
		Secondary:  lo.Secondary.Lerp(hi.Secondary, t),
		Accent:     lo.Accent.Lerp(hi.Accent, t),
		Background: lo.Background.Lerp(hi.Background, t),
	}
}
