// Package app provides the application wrapper around the showroom.
//
// It pulls initialization out of the main package so desktop and mobile
// entry points can share it: main.go calls NewApp() for desktop, the
// mobile bindings do the same from their own entry point.
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/skyyrose/showroom/internal/wpajax"
	"github.com/skyyrose/showroom/pkg/config"
	"github.com/skyyrose/showroom/pkg/embedded"
	"github.com/skyyrose/showroom/pkg/experience"
	"github.com/skyyrose/showroom/pkg/scenes"
)

// gdataAppName namespaces the local cart save under the OS data dir.
const gdataAppName = "skyyrose_showroom"

// sceneFiles maps each collection to its embedded scene description.
var sceneFiles = map[config.CollectionKind]string{
	config.CollectionBlackRose: "assets/config/black_rose.yaml",
	config.CollectionLoveHurts: "assets/config/love_hurts.yaml",
	config.CollectionSignature: "assets/config/signature.yaml",
	config.CollectionPreorder:  "assets/config/preorder.yaml",
}

// Config defines application startup options.
type Config struct {
	// Verbose enables detailed log output.
	Verbose bool
	// Collection selects the experience to open with, e.g. "black-rose".
	Collection string
	// ClientConfigPath points at the storefront connection config. A
	// missing file means offline mode.
	ClientConfigPath string
	// SiteURL overrides the storefront URL from the client config.
	SiteURL string
	// AssetDir is the directory checked for product model files.
	AssetDir string
}

// App is the application wrapper, implementing ebiten.Game.
type App struct {
	sceneManager *experience.SceneManager
	cart         *experience.CartStore
	bus          *experience.Bus
	verbose      bool

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp creates and initializes the showroom application.
//
// embedded.Init() must have been called before this.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("embedded assets not initialized")
	}

	kind := config.CollectionKind(cfg.Collection)
	if !config.ValidKind(kind) {
		return nil, fmt.Errorf("unknown collection %q", cfg.Collection)
	}

	clientCfg, err := config.LoadClientConfig(cfg.ClientConfigPath)
	if err != nil {
		return nil, fmt.Errorf("client config: %w", err)
	}
	if cfg.SiteURL != "" {
		clientCfg.SiteURL = cfg.SiteURL
	}
	wp := wpajax.NewClient(clientCfg.AjaxURL(), clientCfg.Nonce, clientCfg.RequestTimeout)
	if wp.Offline() {
		log.Printf("[App] no storefront configured, running offline")
	} else {
		log.Printf("[App] storefront endpoint: %s", clientCfg.AjaxURL())
	}

	// Local cart persistence. A failed open degrades to memory-only
	// rather than aborting startup.
	manager, err := gdata.Open(gdata.Config{AppName: gdataAppName})
	if err != nil {
		log.Printf("[App] gdata unavailable, cart will not persist: %v", err)
		manager = nil
	}

	bus := experience.NewBus()
	cart := experience.NewCartStore(manager, bus, wp)

	sceneManager := experience.NewSceneManager()
	sceneManager.SetSceneFactory(func(k config.CollectionKind) experience.Scene {
		scene, err := loadExperience(k, scenes.Deps{
			Cart:     cart,
			Bus:      bus,
			WP:       wp,
			AssetDir: cfg.AssetDir,
		})
		if err != nil {
			log.Printf("[App] failed to load collection %s: %v", k, err)
			return nil
		}
		return scene
	})

	log.Printf("[App] opening collection: %s", kind)
	sceneManager.LoadCollection(kind)

	return &App{
		sceneManager: sceneManager,
		cart:         cart,
		bus:          bus,
		verbose:      cfg.Verbose,
	}, nil
}

// loadExperience parses the embedded scene description for a collection
// and builds a started controller from it.
func loadExperience(kind config.CollectionKind, deps scenes.Deps) (*scenes.ExperienceScene, error) {
	path, ok := sceneFiles[kind]
	if !ok {
		return nil, fmt.Errorf("no scene description for collection %q", kind)
	}
	fsys, err := embedded.FS()
	if err != nil {
		return nil, err
	}
	sceneCfg, err := config.LoadSceneConfigFS(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("scene config %s: %w", path, err)
	}
	scene, err := scenes.NewExperienceScene(sceneCfg, deps)
	if err != nil {
		return nil, err
	}
	if err := scene.Start(); err != nil {
		return nil, err
	}
	return scene, nil
}

// Update advances the application one tick (60 per second).
func (a *App) Update() error {
	// Exiting fullscreen needs a few frames before the window manager
	// will accept a new window size.
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 toggles fullscreen.
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// Number keys jump between collections.
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		a.sceneManager.LoadCollection(config.CollectionBlackRose)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		a.sceneManager.LoadCollection(config.CollectionLoveHurts)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		a.sceneManager.LoadCollection(config.CollectionSignature)
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		a.sceneManager.LoadCollection(config.CollectionPreorder)
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw renders the current experience.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout returns the logical screen size, independent of the window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// SceneManager returns the scene manager, for shutdown cleanup.
func (a *App) SceneManager() *experience.SceneManager {
	return a.sceneManager
}

// Cart returns the local cart store.
func (a *App) Cart() *experience.CartStore {
	return a.cart
}
