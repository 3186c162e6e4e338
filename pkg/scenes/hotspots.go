package scenes

import (
	"log"
	"os"

	"github.com/skyyrose/showroom/pkg/config"
)

// Hotspot is an interactive product marker in the scene. A hotspot whose
// 3D model asset is missing renders as a flat placeholder card with a
// "coming soon" badge; that fallback is product behavior, not an error
// path.
type Hotspot struct {
	Spec config.HotspotSpec

	// ModelMissing is resolved once at build time.
	ModelMissing bool

	// Screen-space position and visibility, refreshed each frame by the
	// scene for hit testing.
	ScreenX, ScreenY float64
	Visible          bool
}

// buildHotspots resolves hotspot specs against the asset directory.
// Missing model files are logged and flagged for the placeholder path.
func buildHotspots(specs []config.HotspotSpec, assetDir string) []*Hotspot {
	hotspots := make([]*Hotspot, 0, len(specs))
	for _, spec := range specs {
		h := &Hotspot{Spec: spec}
		if spec.ModelPath != "" {
			path := spec.ModelPath
			if assetDir != "" {
				path = assetDir + "/" + spec.ModelPath
			}
			if _, err := os.Stat(path); err != nil {
				log.Printf("[Hotspots] model %s unavailable for %q, using placeholder: %v",
					spec.ModelPath, spec.Title, err)
				h.ModelMissing = true
			}
		} else {
			h.ModelMissing = true
		}
		hotspots = append(hotspots, h)
	}
	return hotspots
}

// hitRadius is the screen-space pick radius for hotspot clicks, in pixels.
const hitRadius = 28.0

// Hit reports whether the screen coordinate lands on the hotspot.
func (h *Hotspot) Hit(x, y float64) bool {
	if !h.Visible {
		return false
	}
	dx := x - h.ScreenX
	dy := y - h.ScreenY
	return dx*dx+dy*dy <= hitRadius*hitRadius
}
