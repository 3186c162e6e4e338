package scenes

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/skyyrose/showroom/pkg/config"
	"github.com/skyyrose/showroom/pkg/systems"
)

// trailingFadeWidth is the fixed scroll-progress span over which a group
// fades back out after its window's fadeOutEnd.
const trailingFadeWidth = 0.15

// WindowOpacity is the deterministic visibility function of scroll
// progress: 0 below fadeInStart, a linear ramp to 1 at peak, 1 through
// fadeOutEnd, then a linear ramp back to 0 over trailingFadeWidth.
// Continuous across all four breakpoints.
func WindowOpacity(w config.VisibilityWindow, progress float64) float64 {
	switch {
	case progress < w.FadeInStart:
		return 0
	case progress < w.Peak:
		span := w.Peak - w.FadeInStart
		if span <= 0 {
			return 1
		}
		return (progress - w.FadeInStart) / span
	case progress <= w.FadeOutEnd:
		return 1
	default:
		o := 1 - (progress-w.FadeOutEnd)/trailingFadeWidth
		if o < 0 {
			return 0
		}
		return o
	}
}

// SceneObject is one decorative visual. Its outline geometry is immutable
// after construction; only Rotation, BobOffset and Opacity mutate per
// frame.
type SceneObject struct {
	Kind  string
	Group string
	Pos   systems.Vec3
	Scale float64

	// Outline is the object's local-space polyline geometry, frozen at
	// build time.
	Outline []systems.Vec3

	Phase    float64 // per-object bob phase
	BobAmp   float64
	RotSpeed float64 // radians per second

	// Per-frame derived state.
	Rotation  float64
	BobOffset float64
	Opacity   float64
}

// SceneGraph is the frozen set of decorative objects for one experience.
// Objects are created once by BuildSceneGraph; no object is added or
// removed for the remainder of the session.
type SceneGraph struct {
	objects []*SceneObject
	windows map[string]config.VisibilityWindow
}

// BuildSceneGraph constructs all decorative objects from their specs with
// random placement (these are decorative, non-reproducible visuals) and
// indexes the visibility windows by group.
func BuildSceneGraph(specs []config.ObjectSpec, windows []config.VisibilityWindow, seed int64) (*SceneGraph, error) {
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &SceneGraph{
		windows: make(map[string]config.VisibilityWindow, len(windows)),
	}
	for _, w := range windows {
		g.windows[w.Group] = w
	}

	for _, spec := range specs {
		outline, err := buildOutline(spec.Kind)
		if err != nil {
			return nil, err
		}
		for i := 0; i < spec.Count; i++ {
			angle := rng.Float64() * 2 * math.Pi
			radius := spec.Radius * (0.4 + 0.6*rng.Float64())
			g.objects = append(g.objects, &SceneObject{
				Kind:  spec.Kind,
				Group: spec.Group,
				Pos: systems.Vec3{
					X: radius * math.Cos(angle),
					Y: (rng.Float64()*2 - 1) * spec.Radius * 0.4,
					Z: radius * math.Sin(angle),
				},
				Scale:    spec.Scale * (0.7 + 0.6*rng.Float64()),
				Outline:  outline,
				Phase:    rng.Float64() * 2 * math.Pi,
				BobAmp:   spec.Bob,
				RotSpeed: 0.2 + rng.Float64()*0.4,
				Opacity:  1,
			})
		}
	}
	return g, nil
}

// Objects returns the frozen object list.
func (g *SceneGraph) Objects() []*SceneObject {
	return g.objects
}

// Update advances the per-frame derived state: rotation, vertical bob and
// window opacity. Geometry and the object set itself never change.
func (g *SceneGraph) Update(dt, elapsed, progress float64) {
	for _, o := range g.objects {
		o.Rotation += o.RotSpeed * dt
		o.BobOffset = math.Sin(elapsed+o.Phase) * o.BobAmp
		o.Opacity = g.GroupOpacity(o.Group, progress)
	}
}

// GroupOpacity returns the visibility of a named group at the given
// progress. Groups without a window are always fully visible.
func (g *SceneGraph) GroupOpacity(group string, progress float64) float64 {
	w, ok := g.windows[group]
	if !ok {
		return 1
	}
	return WindowOpacity(w, progress)
}

// buildOutline returns the local-space polyline for a decorative kind.
func buildOutline(kind string) ([]systems.Vec3, error) {
	switch kind {
	case "rose":
		return roseOutline(), nil
	case "heart":
		return heartOutline(), nil
	case "diamond":
		return diamondOutline(), nil
	case "ring":
		return ringOutline(), nil
	case "frame":
		return frameOutline(), nil
	}
	return nil, fmt.Errorf("unknown decorative object kind %q", kind)
}

// roseOutline traces a rhodonea curve: a stylized five-petal rose.
func roseOutline() []systems.Vec3 {
	const steps = 120
	pts := make([]systems.Vec3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps * 2 * math.Pi
		r := math.Cos(2.5*t) // 5 petals over one full turn
		pts = append(pts, systems.Vec3{
			X: r * math.Cos(t),
			Y: r * math.Sin(t),
		})
	}
	return pts
}

// heartOutline traces the classic parametric heart curve, normalized to a
// roughly unit extent.
func heartOutline() []systems.Vec3 {
	const steps = 80
	pts := make([]systems.Vec3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps * 2 * math.Pi
		s := math.Sin(t)
		x := 16 * s * s * s
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		pts = append(pts, systems.Vec3{X: x / 17, Y: y / 17})
	}
	return pts
}

// diamondOutline traces a brilliant-cut silhouette: crown, girdle and
// pavilion point.
func diamondOutline() []systems.Vec3 {
	return []systems.Vec3{
		{X: -0.5, Y: 0.3},
		{X: -0.25, Y: 0.6},
		{X: 0.25, Y: 0.6},
		{X: 0.5, Y: 0.3},
		{X: 0, Y: -0.7},
		{X: -0.5, Y: 0.3},
		{X: 0.5, Y: 0.3}, // girdle line
	}
}

// ringOutline traces a circle.
func ringOutline() []systems.Vec3 {
	const steps = 48
	pts := make([]systems.Vec3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps * 2 * math.Pi
		pts = append(pts, systems.Vec3{X: math.Cos(t), Y: math.Sin(t)})
	}
	return pts
}

// frameOutline traces a portrait frame rectangle.
func frameOutline() []systems.Vec3 {
	return []systems.Vec3{
		{X: -0.6, Y: -0.8},
		{X: 0.6, Y: -0.8},
		{X: 0.6, Y: 0.8},
		{X: -0.6, Y: 0.8},
		{X: -0.6, Y: -0.8},
	}
}
