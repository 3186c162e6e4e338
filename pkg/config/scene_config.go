package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// CollectionKind identifies which collection experience a scene config
// describes. One parameterized controller renders all of them.
type CollectionKind string

const (
	CollectionBlackRose CollectionKind = "black-rose"
	CollectionLoveHurts CollectionKind = "love-hurts"
	CollectionSignature CollectionKind = "signature"
	CollectionPreorder  CollectionKind = "preorder"
)

// ValidKind reports whether k names a known collection.
func ValidKind(k CollectionKind) bool {
	switch k {
	case CollectionBlackRose, CollectionLoveHurts, CollectionSignature, CollectionPreorder:
		return true
	}
	return false
}

// SceneConfig is the declarative description of one collection experience:
// its ordered theme list, decorative objects, particle fields, visibility
// windows and product hotspots. Loaded once at startup and read-only
// afterwards.
type SceneConfig struct {
	ID         string         `yaml:"id"`         // e.g. "black-rose"
	Name       string         `yaml:"name"`       // e.g. "BLACK ROSE Garden"
	Tagline    string         `yaml:"tagline"`    // marketing strapline
	Collection CollectionKind `yaml:"collection"` // tagged variant selecting behavior

	// ScrollHeight is the virtual scrollable height in pixels. Zero gets
	// the default applied.
	ScrollHeight float64 `yaml:"scrollHeight"`

	// ScrollSmoothing is the easing factor for the scroll tracker,
	// constant for the life of the controller. Valid range (0, 1].
	ScrollSmoothing float64 `yaml:"scrollSmoothing"`

	Themes    []ThemeConfig      `yaml:"themes"`    // ordered; blended by scroll progress
	Objects   []ObjectSpec       `yaml:"objects"`   // decorative scene objects, built once
	Particles []ParticleSpec     `yaml:"particles"` // independent particle fields
	Windows   []VisibilityWindow `yaml:"windows"`   // per-group fade breakpoints
	Hotspots  []HotspotSpec      `yaml:"hotspots"`  // product hotspots
	Waypoints []CameraWaypoint   `yaml:"waypoints"` // camera path over scroll progress

	// PreorderProductID enables the countdown banner when nonzero.
	PreorderProductID int `yaml:"preorderProductId"`
}

// ThemeConfig is one named palette in hex form.
type ThemeConfig struct {
	Name       string `yaml:"name"`
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`
}

// ObjectSpec describes a batch of procedural decorative objects.
type ObjectSpec struct {
	Kind   string  `yaml:"kind"`   // "rose", "heart", "diamond", "ring", "frame"
	Group  string  `yaml:"group"`  // visibility window group name
	Count  int     `yaml:"count"`  // how many instances to scatter
	Radius float64 `yaml:"radius"` // placement radius around origin
	Scale  float64 `yaml:"scale"`  // base object scale, default 1
	Bob    float64 `yaml:"bob"`    // vertical float amplitude
}

// ParticleSpec describes one particle field.
type ParticleSpec struct {
	Name         string  `yaml:"name"`
	Count        int     `yaml:"count"`
	Shape        string  `yaml:"shape"` // "sphere-shell", "sphere", "box"
	RadiusMin    float64 `yaml:"radiusMin"`
	RadiusMax    float64 `yaml:"radiusMax"`
	BoxX         float64 `yaml:"boxX"`
	BoxY         float64 `yaml:"boxY"`
	BoxZ         float64 `yaml:"boxZ"`
	VelMin       float64 `yaml:"velMin"` // per-axis velocity range
	VelMax       float64 `yaml:"velMax"`
	DriftY       float64 `yaml:"driftY"` // constant vertical drift added to VelY
	OscAmplitude float64 `yaml:"oscAmplitude"`
	OscFrequency float64 `yaml:"oscFrequency"`
	Reset        string  `yaml:"reset"` // "bounce" or "respawn"
	BoundRadius  float64 `yaml:"boundRadius"`
	BoundY       float64 `yaml:"boundY"`
	Size         float64 `yaml:"size"` // render size in pixels
}

// VisibilityWindow assigns scroll-progress fade breakpoints to a named
// object group: opacity ramps 0 to 1 between FadeInStart and Peak, holds 1
// through FadeOutEnd, then ramps back to 0 over a fixed trailing width.
type VisibilityWindow struct {
	Group       string  `yaml:"group"`
	FadeInStart float64 `yaml:"fadeInStart"`
	Peak        float64 `yaml:"peak"`
	FadeOutEnd  float64 `yaml:"fadeOutEnd"`
}

// HotspotSpec is a product hotspot in the scene, generated from
// WooCommerce product data.
type HotspotSpec struct {
	ProductID int     `yaml:"productId"`
	Title     string  `yaml:"title"`
	Price     float64 `yaml:"price"`
	Emoji     string  `yaml:"emoji"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Z         float64 `yaml:"z"`
	// ModelPath points at the 3D asset for this product. A missing file
	// triggers the 2D "coming soon" placeholder at render time.
	ModelPath string `yaml:"modelPath"`
}

// CameraWaypoint positions the camera at a given scroll percentage.
type CameraWaypoint struct {
	ScrollPercent float64 `yaml:"scrollPercent"` // 0-100
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	Z             float64 `yaml:"z"`
}

// LoadSceneConfig reads a scene description from a YAML file on disk.
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config %s: %w", path, err)
	}
	return parseSceneConfig(data, path)
}

// LoadSceneConfigFS reads a scene description from an embedded filesystem.
func LoadSceneConfigFS(fsys fs.FS, path string) (*SceneConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded scene config %s: %w", path, err)
	}
	return parseSceneConfig(data, path)
}

func parseSceneConfig(data []byte, path string) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML from %s: %w", path, err)
	}

	applySceneDefaults(&cfg)

	if err := validateSceneConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid scene config in %s: %w", path, err)
	}
	return &cfg, nil
}

// applySceneDefaults fills missing optional fields so older config files
// keep loading.
func applySceneDefaults(cfg *SceneConfig) {
	if cfg.ScrollHeight == 0 {
		cfg.ScrollHeight = 4000
	}
	if cfg.ScrollSmoothing == 0 {
		cfg.ScrollSmoothing = 0.1
	}
	for i := range cfg.Objects {
		if cfg.Objects[i].Scale == 0 {
			cfg.Objects[i].Scale = 1
		}
		if cfg.Objects[i].Count == 0 {
			cfg.Objects[i].Count = 1
		}
	}
	for i := range cfg.Particles {
		p := &cfg.Particles[i]
		if p.Shape == "" {
			p.Shape = "sphere-shell"
		}
		if p.Reset == "" {
			p.Reset = "respawn"
		}
		if p.Size == 0 {
			p.Size = 2
		}
	}
}

func validateSceneConfig(cfg *SceneConfig) error {
	if cfg.ID == "" {
		return fmt.Errorf("missing scene id")
	}
	if !ValidKind(cfg.Collection) {
		return fmt.Errorf("unknown collection kind %q", cfg.Collection)
	}
	if len(cfg.Themes) == 0 {
		return fmt.Errorf("scene %s declares no themes", cfg.ID)
	}
	if cfg.ScrollSmoothing <= 0 || cfg.ScrollSmoothing > 1 {
		return fmt.Errorf("scene %s: scrollSmoothing %.3f out of (0, 1]", cfg.ID, cfg.ScrollSmoothing)
	}
	for _, th := range cfg.Themes {
		if th.Name == "" {
			return fmt.Errorf("scene %s has an unnamed theme", cfg.ID)
		}
	}
	for _, p := range cfg.Particles {
		switch p.Reset {
		case "bounce", "respawn":
		default:
			return fmt.Errorf("scene %s particle field %q: unknown reset policy %q", cfg.ID, p.Name, p.Reset)
		}
		switch p.Shape {
		case "sphere-shell", "sphere", "box":
		default:
			return fmt.Errorf("scene %s particle field %q: unknown shape %q", cfg.ID, p.Name, p.Shape)
		}
		if p.Count <= 0 {
			return fmt.Errorf("scene %s particle field %q: count must be positive", cfg.ID, p.Name)
		}
	}
	for _, w := range cfg.Windows {
		if w.Group == "" {
			return fmt.Errorf("scene %s has a visibility window without a group", cfg.ID)
		}
		if !(w.FadeInStart <= w.Peak && w.Peak <= w.FadeOutEnd) {
			return fmt.Errorf("scene %s window %q: breakpoints must be ordered fadeInStart <= peak <= fadeOutEnd",
				cfg.ID, w.Group)
		}
	}
	for _, h := range cfg.Hotspots {
		if h.ProductID < 0 {
			return fmt.Errorf("scene %s hotspot %q: negative product id", cfg.ID, h.Title)
		}
	}
	return nil
}
