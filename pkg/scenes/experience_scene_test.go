package scenes

import (
	"testing"

	"github.com/skyyrose/showroom/pkg/config"
	"github.com/skyyrose/showroom/pkg/experience"
	"github.com/skyyrose/showroom/pkg/systems"
)

func testSceneConfig() *config.SceneConfig {
	return &config.SceneConfig{
		ID:              "love-hurts",
		Name:            "LOVE HURTS Castle",
		Collection:      config.CollectionLoveHurts,
		ScrollHeight:    4000,
		ScrollSmoothing: 0.1,
		Themes: []config.ThemeConfig{
			{Name: "hero", Primary: "#000000", Secondary: "#C0C0C0", Accent: "#FFFFFF", Background: "#0D0D0D"},
			{Name: "castle", Primary: "#8B4049", Secondary: "#C9356C", Accent: "#FF6B9D", Background: "#1A0A0F"},
		},
		Objects: []config.ObjectSpec{
			{Kind: "heart", Group: "castle", Count: 3, Radius: 6, Scale: 1, Bob: 0.2},
		},
		Particles: []config.ParticleSpec{
			{Name: "embers", Count: 50, Shape: "sphere-shell", RadiusMin: 4, RadiusMax: 8,
				Reset: "respawn", BoundRadius: 12, Size: 2},
		},
		Windows: []config.VisibilityWindow{
			{Group: "castle", FadeInStart: 0.1, Peak: 0.3, FadeOutEnd: 0.8},
		},
		Hotspots: []config.HotspotSpec{
			{ProductID: 42, Title: "Rose Ring", Price: 120, Emoji: "💍", X: 2, Y: 1, Z: -3},
		},
	}
}

func newTestScene(t *testing.T, deps Deps) *ExperienceScene {
	t.Helper()
	s, err := NewExperienceScene(testSceneConfig(), deps)
	if err != nil {
		t.Fatalf("NewExperienceScene() failed: %v", err)
	}
	return s
}

func TestSceneLifecycle(t *testing.T) {
	t.Run("new scene is in building state", func(t *testing.T) {
		s := newTestScene(t, Deps{})
		if s.State() != StateBuilding {
			t.Errorf("State() = %v, want building", s.State())
		}
	})

	t.Run("start transitions to running", func(t *testing.T) {
		s := newTestScene(t, Deps{})
		if err := s.Start(); err != nil {
			t.Fatalf("Start() failed: %v", err)
		}
		if s.State() != StateRunning {
			t.Errorf("State() = %v after Start, want running", s.State())
		}
	})

	t.Run("stop before start is a safe no-op", func(t *testing.T) {
		s := newTestScene(t, Deps{})
		s.Stop() // must not panic
		if s.State() != StateStopped {
			t.Errorf("State() = %v after Stop, want stopped", s.State())
		}
		if err := s.Start(); err == nil {
			t.Error("Start() after Stop must fail")
		}
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		s := newTestScene(t, Deps{})
		if err := s.Start(); err != nil {
			t.Fatal(err)
		}
		s.Stop()
		s.Stop() // second call must be safe
		if s.State() != StateStopped {
			t.Errorf("State() = %v, want stopped", s.State())
		}
	})

	t.Run("double start fails", func(t *testing.T) {
		s := newTestScene(t, Deps{})
		if err := s.Start(); err != nil {
			t.Fatal(err)
		}
		if err := s.Start(); err == nil {
			t.Error("second Start() must fail")
		}
	})
}

func TestSceneUpdateGatedByState(t *testing.T) {
	s := newTestScene(t, Deps{})

	// Building: frames are not advanced.
	s.Update(1.0 / 60.0)
	if s.elapsed != 0 {
		t.Errorf("elapsed advanced in building state")
	}

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	s.Update(1.0 / 60.0)
	if s.elapsed == 0 {
		t.Errorf("elapsed did not advance in running state")
	}

	s.Stop()
	before := s.elapsed
	s.Update(1.0 / 60.0)
	if s.elapsed != before {
		t.Errorf("elapsed advanced after stop")
	}
}

func TestSceneFrameOrderThemeFollowsScroll(t *testing.T) {
	s := newTestScene(t, Deps{})
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}

	// At the top of the page the blend equals the first theme.
	s.Update(1.0 / 60.0)
	if got := s.blend.Primary.Hex(); got != "#000000" {
		t.Errorf("blend at top = %s, want first theme primary", got)
	}

	// Jump to the bottom; the same frame's blend must already reflect the
	// new progress (theme is computed after scroll within one frame).
	s.scroll.JumpTo(1)
	s.Update(1.0 / 60.0)
	if got := s.blend.Primary.Hex(); got != "#8B4049" {
		t.Errorf("blend at bottom = %s, want last theme primary", got)
	}
}

func TestSceneVisibilityFollowsScroll(t *testing.T) {
	s := newTestScene(t, Deps{})
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}

	s.scroll.JumpTo(0.5) // plateau of the castle window
	s.Update(1.0 / 60.0)
	for _, o := range s.graph.Objects() {
		if o.Opacity != 1 {
			t.Errorf("object opacity = %.3f at plateau, want 1", o.Opacity)
		}
	}
}

func TestSceneHotspotActivation(t *testing.T) {
	bus := experience.NewBus()
	var clicks []experience.ProductClickEvent
	bus.Subscribe(experience.TopicProductClick, func(payload any) {
		clicks = append(clicks, payload.(experience.ProductClickEvent))
	})
	cart := experience.NewCartStore(nil, bus, nil)

	s := newTestScene(t, Deps{Cart: cart, Bus: bus})
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}

	s.activateHotspot(0)

	if len(clicks) != 1 {
		t.Fatalf("got %d product-click events, want 1", len(clicks))
	}
	if clicks[0].Index != 0 || clicks[0].Collection != "love-hurts" {
		t.Errorf("click event = %+v", clicks[0])
	}

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("cart has %d items, want 1", len(items))
	}
	if items[0].ID != "42" || items[0].Name != "Rose Ring" || items[0].Price != 120 {
		t.Errorf("cart item = %+v", items[0])
	}
}

func TestSceneHotspotModelFallback(t *testing.T) {
	cfg := testSceneConfig()
	cfg.Hotspots[0].ModelPath = "models/rose-ring.glb" // not on disk

	s, err := NewExperienceScene(cfg, Deps{AssetDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewExperienceScene() failed: %v", err)
	}
	if !s.hotspots[0].ModelMissing {
		t.Error("missing model file must flag the placeholder fallback")
	}
}

func TestSceneCameraWaypoints(t *testing.T) {
	cfg := testSceneConfig()
	cfg.Waypoints = []config.CameraWaypoint{
		{ScrollPercent: 0, X: 0, Y: 0, Z: 20},
		{ScrollPercent: 100, X: 10, Y: 4, Z: 10},
	}
	s, err := NewExperienceScene(cfg, Deps{})
	if err != nil {
		t.Fatal(err)
	}

	cam := s.cameraAt(0.5)
	if cam.X != 5 || cam.Y != 2 || cam.Z != 15 {
		t.Errorf("cameraAt(0.5) = %+v, want midpoint {5 2 15}", cam)
	}

	cam = s.cameraAt(0)
	if cam.Z != 20 {
		t.Errorf("cameraAt(0).Z = %.1f, want 20", cam.Z)
	}
	cam = s.cameraAt(1)
	if cam.Z != 10 {
		t.Errorf("cameraAt(1).Z = %.1f, want 10", cam.Z)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := systems.Vec3{X: 0, Y: 0, Z: 10}
	if _, _, ok := project(systems.Vec3{X: 0, Y: 0, Z: 30}, cam, 0); ok {
		t.Error("point behind the camera must not project")
	}
	if _, _, ok := project(systems.Vec3{X: 0, Y: 0, Z: 0}, cam, 0); !ok {
		t.Error("point in front of the camera must project")
	}
}
