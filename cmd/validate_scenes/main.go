// Command validate_scenes checks every scene description under
// assets/config for schema and breakpoint errors without opening a window.
//
// Usage: go run ./cmd/validate_scenes [dir]
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/skyyrose/showroom/pkg/config"
)

func main() {
	dir := "assets/config"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		fmt.Printf("❌ glob failed: %v\n", err)
		os.Exit(1)
	}
	if len(matches) == 0 {
		fmt.Printf("❌ no scene descriptions found under %s\n", dir)
		os.Exit(1)
	}
	sort.Strings(matches)

	failed := 0
	for _, path := range matches {
		cfg, err := config.LoadSceneConfig(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s: collection=%s themes=%d objects=%d fields=%d windows=%d hotspots=%d\n",
			path, cfg.Collection, len(cfg.Themes), len(cfg.Objects),
			len(cfg.Particles), len(cfg.Windows), len(cfg.Hotspots))
	}

	if failed > 0 {
		fmt.Printf("❌ %d of %d scene descriptions failed validation\n", failed, len(matches))
		os.Exit(1)
	}
	fmt.Printf("✅ all %d scene descriptions valid\n", len(matches))
}
