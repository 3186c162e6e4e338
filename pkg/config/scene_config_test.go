package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validSceneYAML = `id: "black-rose"
name: "BLACK ROSE Garden"
tagline: "Dark Elegance, Mystery, Exclusivity"
collection: "black-rose"
scrollHeight: 6000
themes:
  - name: hero
    primary: "#000000"
    secondary: "#C0C0C0"
    accent: "#FFFFFF"
    background: "#0D0D0D"
  - name: garden
    primary: "#8B4049"
    secondary: "#C9356C"
    accent: "#FF6B9D"
    background: "#1A0A0F"
objects:
  - kind: rose
    group: garden
    count: 12
    radius: 8
particles:
  - name: petals
    count: 200
    shape: sphere-shell
    radiusMin: 5
    radiusMax: 15
    reset: respawn
    boundRadius: 20
windows:
  - group: garden
    fadeInStart: 0.1
    peak: 0.3
    fadeOutEnd: 0.6
hotspots:
  - productId: 42
    title: "Rose Ring"
    price: 120
    emoji: "💍"
    x: 2
    y: 1
    z: -3
`

func writeSceneFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestLoadSceneConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg, err := LoadSceneConfig(writeSceneFile(t, validSceneYAML))
		if err != nil {
			t.Fatalf("LoadSceneConfig() failed: %v", err)
		}
		if cfg.ID != "black-rose" {
			t.Errorf("ID = %q, want black-rose", cfg.ID)
		}
		if cfg.Collection != CollectionBlackRose {
			t.Errorf("Collection = %q, want %q", cfg.Collection, CollectionBlackRose)
		}
		if len(cfg.Themes) != 2 {
			t.Fatalf("len(Themes) = %d, want 2", len(cfg.Themes))
		}
		if cfg.Themes[1].Primary != "#8B4049" {
			t.Errorf("Themes[1].Primary = %q", cfg.Themes[1].Primary)
		}
		if len(cfg.Hotspots) != 1 || cfg.Hotspots[0].ProductID != 42 {
			t.Errorf("hotspots not parsed: %+v", cfg.Hotspots)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg, err := LoadSceneConfig(writeSceneFile(t, validSceneYAML))
		if err != nil {
			t.Fatalf("LoadSceneConfig() failed: %v", err)
		}
		if cfg.ScrollSmoothing != 0.1 {
			t.Errorf("ScrollSmoothing default = %.3f, want 0.1", cfg.ScrollSmoothing)
		}
		if cfg.Objects[0].Scale != 1 {
			t.Errorf("object Scale default = %.1f, want 1", cfg.Objects[0].Scale)
		}
		if cfg.Particles[0].Size != 2 {
			t.Errorf("particle Size default = %.1f, want 2", cfg.Particles[0].Size)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadSceneConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("unknown collection kind", func(t *testing.T) {
		bad := `id: "x"
collection: "platinum"
themes:
  - name: a
`
		if _, err := LoadSceneConfig(writeSceneFile(t, bad)); err == nil {
			t.Error("expected error for unknown collection kind")
		}
	})

	t.Run("no themes", func(t *testing.T) {
		bad := `id: "x"
collection: "signature"
`
		if _, err := LoadSceneConfig(writeSceneFile(t, bad)); err == nil {
			t.Error("expected error for empty theme list")
		}
	})

	t.Run("unordered window breakpoints", func(t *testing.T) {
		bad := `id: "x"
collection: "signature"
themes:
  - name: a
windows:
  - group: g
    fadeInStart: 0.5
    peak: 0.3
    fadeOutEnd: 0.6
`
		if _, err := LoadSceneConfig(writeSceneFile(t, bad)); err == nil {
			t.Error("expected error for unordered breakpoints")
		}
	})

	t.Run("bad reset policy", func(t *testing.T) {
		bad := `id: "x"
collection: "signature"
themes:
  - name: a
particles:
  - name: p
    count: 10
    reset: explode
`
		if _, err := LoadSceneConfig(writeSceneFile(t, bad)); err == nil {
			t.Error("expected error for unknown reset policy")
		}
	})
}

func TestLoadClientConfig(t *testing.T) {
	t.Run("missing file gives offline defaults", func(t *testing.T) {
		cfg, err := LoadClientConfig(filepath.Join(t.TempDir(), "client.yaml"))
		if err != nil {
			t.Fatalf("LoadClientConfig() failed: %v", err)
		}
		if cfg.AjaxURL() != "" {
			t.Errorf("AjaxURL() = %q in offline mode, want empty", cfg.AjaxURL())
		}
		if cfg.AjaxPath != "/wp-admin/admin-ajax.php" {
			t.Errorf("AjaxPath default = %q", cfg.AjaxPath)
		}
	})

	t.Run("valid config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "client.yaml")
		content := "siteUrl: \"https://skyyrose.co\"\nnonce: \"abc123\"\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadClientConfig(path)
		if err != nil {
			t.Fatalf("LoadClientConfig() failed: %v", err)
		}
		if want := "https://skyyrose.co/wp-admin/admin-ajax.php"; cfg.AjaxURL() != want {
			t.Errorf("AjaxURL() = %q, want %q", cfg.AjaxURL(), want)
		}
	})

	t.Run("bad scheme rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "client.yaml")
		if err := os.WriteFile(path, []byte("siteUrl: \"ftp://x\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadClientConfig(path); err == nil {
			t.Error("expected error for non-http scheme")
		}
	})
}
