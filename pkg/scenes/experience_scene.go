package scenes

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/skyyrose/showroom/internal/wpajax"
	"github.com/skyyrose/showroom/pkg/config"
	"github.com/skyyrose/showroom/pkg/experience"
	"github.com/skyyrose/showroom/pkg/systems"
	"github.com/skyyrose/showroom/pkg/theme"
)

// ControllerState is the scene controller lifecycle.
type ControllerState int

const (
	StateUninitialized ControllerState = iota
	StateBuilding
	StateRunning
	StateStopped
)

func (s ControllerState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateBuilding:
		return "building"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// wheelStep converts one mouse wheel notch into scroll pixels.
const wheelStep = 48.0

// keyScrollSpeed is the arrow-key scroll rate in pixels per second.
const keyScrollSpeed = 900.0

// Deps are the collaborators an experience scene needs. Bus and Cart are
// shared page-level objects; WP may be nil or offline.
type Deps struct {
	Cart     *experience.CartStore
	Bus      *experience.Bus
	WP       *wpajax.Client
	AssetDir string
}

// ExperienceScene is the unified scroll-driven scene controller. One
// instance, parameterized by its SceneConfig, renders any of the
// collection experiences; the three per-collection copies of the old
// storefront collapse into this.
//
// Within one frame the update order is fixed and load-bearing:
// scroll -> particle fields -> theme blend -> scene graph -> render.
type ExperienceScene struct {
	cfg   *config.SceneConfig
	state ControllerState

	scroll *systems.ScrollTracker
	interp *theme.Interpolator
	fields []*systems.ParticleField
	graph  *SceneGraph

	hotspots  []*Hotspot
	cart      *experience.CartStore
	bus       *experience.Bus
	wp        *wpajax.Client
	countdown *experience.Countdown
	countdnCh chan *experience.Countdown

	blend   theme.Theme
	elapsed float64

	// dot is the shared particle sprite, created lazily on first draw and
	// released exactly once on Stop.
	dot      *ebiten.Image
	disposed bool
}

// NewExperienceScene builds a controller from its scene description: theme
// interpolator, particle fields, the frozen scene graph and the product
// hotspots. The controller is left in the Building state; call Start to
// begin running frames.
func NewExperienceScene(cfg *config.SceneConfig, deps Deps) (*ExperienceScene, error) {
	s := &ExperienceScene{
		cfg:       cfg,
		state:     StateBuilding,
		cart:      deps.Cart,
		bus:       deps.Bus,
		wp:        deps.WP,
		countdnCh: make(chan *experience.Countdown, 1),
	}

	themes, err := themesFromConfig(cfg.Themes)
	if err != nil {
		return nil, err
	}
	s.interp = theme.NewInterpolator(themes)
	s.blend = s.interp.BlendAt(0)

	s.scroll = systems.NewScrollTracker(cfg.ScrollHeight, cfg.ScrollSmoothing)

	for _, spec := range cfg.Particles {
		s.fields = append(s.fields, systems.NewParticleField(fieldConfigFromSpec(spec)))
	}

	s.graph, err = BuildSceneGraph(cfg.Objects, cfg.Windows, 0)
	if err != nil {
		return nil, err
	}

	s.hotspots = buildHotspots(cfg.Hotspots, deps.AssetDir)

	log.Printf("[Scene] built %s: %d themes, %d particle fields, %d objects, %d hotspots",
		cfg.ID, s.interp.Themes(), len(s.fields), len(s.graph.Objects()), len(s.hotspots))
	return s, nil
}

// State returns the controller lifecycle state.
func (s *ExperienceScene) State() ControllerState {
	return s.state
}

// Start transitions Building -> Running. Starting twice or starting a
// stopped controller is an error.
func (s *ExperienceScene) Start() error {
	if s.state != StateBuilding {
		return fmt.Errorf("cannot start scene %s from state %s", s.cfg.ID, s.state)
	}
	s.state = StateRunning
	s.fetchCountdown()
	log.Printf("[Scene] %s running", s.cfg.ID)
	return nil
}

// Stop halts the controller and releases renderer resources exactly once.
// It is idempotent and safe to call in any state, including Building
// before Start. A stop takes effect between frames; no mid-frame
// cancellation exists.
func (s *ExperienceScene) Stop() {
	if s.state == StateStopped {
		return
	}
	s.state = StateStopped
	if !s.disposed {
		s.disposed = true
		if s.dot != nil {
			s.dot.Deallocate()
			s.dot = nil
		}
		log.Printf("[Scene] %s stopped, resources released", s.cfg.ID)
	}
}

// Dispose implements experience.Disposable for the scene manager.
func (s *ExperienceScene) Dispose() {
	s.Stop()
}

// fetchCountdown kicks off the pre-order countdown fetch without blocking
// the frame loop. The result is handed back over a channel drained by
// Update.
func (s *ExperienceScene) fetchCountdown() {
	if s.cfg.PreorderProductID <= 0 || s.wp == nil || s.wp.Offline() {
		return
	}
	productID := s.cfg.PreorderProductID
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		cfg, err := s.wp.PreorderCountdown(ctx, productID)
		if err != nil {
			log.Printf("[Scene] countdown fetch failed for product %d: %v", productID, err)
			return
		}
		s.countdnCh <- experience.NewCountdown(cfg, time.Now())
	}()
}

// Update advances the controller one frame. Outside the Running state this
// is a no-op.
func (s *ExperienceScene) Update(deltaTime float64) {
	if s.state != StateRunning {
		return
	}
	s.elapsed += deltaTime

	select {
	case c := <-s.countdnCh:
		s.countdown = c
	default:
	}

	// 1. Scroll input and smoothing.
	s.handleInput(deltaTime)
	s.scroll.Update()
	progress := s.scroll.Progress()

	// 2. Particle fields; independent, any order.
	for _, f := range s.fields {
		f.Update(deltaTime)
	}

	// 3. Theme blend for this frame.
	s.blend = s.interp.BlendAt(progress)

	// 4. Scene graph transforms and visibility.
	s.graph.Update(deltaTime, s.elapsed, progress)
	s.projectHotspots(progress)

	s.handleClicks()
}

func (s *ExperienceScene) handleInput(deltaTime float64) {
	_, wy := ebiten.Wheel()
	if wy != 0 {
		s.scroll.Scroll(-wy * wheelStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.scroll.Scroll(keyScrollSpeed * deltaTime)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.scroll.Scroll(-keyScrollSpeed * deltaTime)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		s.scroll.Scroll(s.cfg.ScrollHeight * 0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		s.scroll.Scroll(-s.cfg.ScrollHeight * 0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		s.scroll.JumpTo(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		s.scroll.JumpTo(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && s.cart != nil {
		s.cart.RemoveItem(s.cart.Len() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && s.cart != nil {
		s.cart.Clear()
	}
}

func (s *ExperienceScene) handleClicks() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	for i, h := range s.hotspots {
		if h.Hit(float64(mx), float64(my)) {
			s.activateHotspot(i)
			return
		}
	}
}

// activateHotspot dispatches the product-click event and adds the product
// to the decorative cart.
func (s *ExperienceScene) activateHotspot(index int) {
	spec := s.hotspots[index].Spec
	log.Printf("[Scene] hotspot activated: %q (product %d)", spec.Title, spec.ProductID)

	if s.bus != nil {
		s.bus.Publish(experience.TopicProductClick, experience.ProductClickEvent{
			Index:      index,
			Collection: string(s.cfg.Collection),
		})
	}
	if s.cart != nil {
		s.cart.AddItem(experience.CartItem{
			ID:         strconv.Itoa(spec.ProductID),
			Name:       spec.Title,
			Price:      spec.Price,
			Collection: string(s.cfg.Collection),
			Emoji:      spec.Emoji,
		})
	}
}

// cameraAt interpolates the configured camera waypoints by scroll
// progress. Without waypoints a fixed dolly position is used.
func (s *ExperienceScene) cameraAt(progress float64) systems.Vec3 {
	wps := s.cfg.Waypoints
	if len(wps) == 0 {
		return systems.Vec3{X: 0, Y: 1.5, Z: 16}
	}
	pct := progress * 100
	if pct <= wps[0].ScrollPercent {
		return systems.Vec3{X: wps[0].X, Y: wps[0].Y, Z: wps[0].Z}
	}
	for i := 0; i < len(wps)-1; i++ {
		lo, hi := wps[i], wps[i+1]
		if pct <= hi.ScrollPercent {
			span := hi.ScrollPercent - lo.ScrollPercent
			t := 0.0
			if span > 0 {
				t = (pct - lo.ScrollPercent) / span
			}
			return systems.Vec3{
				X: lo.X + (hi.X-lo.X)*t,
				Y: lo.Y + (hi.Y-lo.Y)*t,
				Z: lo.Z + (hi.Z-lo.Z)*t,
			}
		}
	}
	last := wps[len(wps)-1]
	return systems.Vec3{X: last.X, Y: last.Y, Z: last.Z}
}

// focalLength is the perspective projection constant, in pixels.
const focalLength = 620.0

// project maps a world-space point to screen space under the current
// camera. The scene slowly yaws with scroll progress so the environment
// appears to revolve as the visitor moves through the page. ok is false
// for points behind the camera.
func project(p systems.Vec3, cam systems.Vec3, yaw float64) (sx, sy float64, ok bool) {
	// Yaw around the vertical axis.
	cosY, sinY := math.Cos(yaw), math.Sin(yaw)
	x := p.X*cosY - p.Z*sinY
	z := p.X*sinY + p.Z*cosY

	depth := cam.Z - z
	if depth < 0.5 {
		return 0, 0, false
	}
	scale := focalLength / depth
	sx = float64(config.GameWindowWidth)/2 + (x-cam.X)*scale
	sy = float64(config.GameWindowHeight)/2 - (p.Y-cam.Y)*scale
	return sx, sy, true
}

func (s *ExperienceScene) projectHotspots(progress float64) {
	cam := s.cameraAt(progress)
	yaw := progress * math.Pi / 3
	for _, h := range s.hotspots {
		sx, sy, ok := project(systems.Vec3{X: h.Spec.X, Y: h.Spec.Y, Z: h.Spec.Z}, cam, yaw)
		h.ScreenX, h.ScreenY = sx, sy
		h.Visible = ok
	}
}

// Draw renders the frame: background wash, particle fields, decorative
// objects, hotspots, then the HUD. No scene state mutates here beyond the
// lazily created sprite.
func (s *ExperienceScene) Draw(screen *ebiten.Image) {
	if s.state == StateStopped {
		return
	}

	progress := s.scroll.Progress()
	cam := s.cameraAt(progress)
	yaw := progress * math.Pi / 3

	screen.Fill(s.blend.Background.RGBA())

	s.drawParticles(screen, cam, yaw)
	s.drawObjects(screen, cam, yaw)
	s.drawHotspots(screen)
	s.drawHUD(screen, progress)
}

func (s *ExperienceScene) ensureDot() *ebiten.Image {
	if s.dot == nil {
		s.dot = ebiten.NewImage(8, 8)
		vector.DrawFilledCircle(s.dot, 4, 4, 4, color.White, true)
	}
	return s.dot
}

func (s *ExperienceScene) drawParticles(screen *ebiten.Image, cam systems.Vec3, yaw float64) {
	dot := s.ensureDot()
	for fi, f := range s.fields {
		size := s.cfg.Particles[fi].Size
		clr := s.blend.Secondary
		for _, p := range f.Particles() {
			pos := p.Pos
			pos.Y += p.BobOffset
			sx, sy, ok := project(pos, cam, yaw)
			if !ok {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			sc := size / 8.0
			op.GeoM.Scale(sc, sc)
			op.GeoM.Translate(sx-size/2, sy-size/2)
			op.ColorScale.Scale(float32(clr.R), float32(clr.G), float32(clr.B), 0.85)
			screen.DrawImage(dot, op)
		}
	}
}

func (s *ExperienceScene) drawObjects(screen *ebiten.Image, cam systems.Vec3, yaw float64) {
	for _, o := range s.graph.Objects() {
		if o.Opacity <= 0 {
			continue
		}
		clr := s.blend.Primary.WithAlpha(o.Opacity)

		cosR, sinR := math.Cos(o.Rotation), math.Sin(o.Rotation)
		var prevX, prevY float64
		havePrev := false
		for _, lp := range o.Outline {
			// Local spin, scale, then world placement with bob.
			wx := (lp.X*cosR - lp.Y*sinR) * o.Scale
			wy := (lp.X*sinR + lp.Y*cosR) * o.Scale
			world := systems.Vec3{
				X: o.Pos.X + wx,
				Y: o.Pos.Y + wy + o.BobOffset,
				Z: o.Pos.Z + lp.Z*o.Scale,
			}
			sx, sy, ok := project(world, cam, yaw)
			if !ok {
				havePrev = false
				continue
			}
			if havePrev {
				vector.StrokeLine(screen, float32(prevX), float32(prevY),
					float32(sx), float32(sy), 1.5, clr, true)
			}
			prevX, prevY = sx, sy
			havePrev = true
		}
	}
}

func (s *ExperienceScene) drawHotspots(screen *ebiten.Image) {
	for _, h := range s.hotspots {
		if !h.Visible {
			continue
		}
		x, y := float32(h.ScreenX), float32(h.ScreenY)
		if h.ModelMissing {
			// Flat placeholder card with a "coming soon" badge in place
			// of the missing 3D model.
			vector.DrawFilledRect(screen, x-54, y-34, 108, 68, s.blend.Background.WithAlpha(0.9), true)
			vector.StrokeRect(screen, x-54, y-34, 108, 68, 1.5, s.blend.Secondary.RGBA(), true)
			ebitenutil.DebugPrintAt(screen, h.Spec.Emoji+" "+h.Spec.Title, int(x)-48, int(y)-24)
			ebitenutil.DebugPrintAt(screen, "coming soon", int(x)-34, int(y)+8)
			continue
		}
		vector.DrawFilledCircle(screen, x, y, 7, s.blend.Accent.RGBA(), true)
		vector.StrokeCircle(screen, x, y, 11, 1.5, s.blend.Secondary.RGBA(), true)
		label := fmt.Sprintf("%s %s  $%.0f", h.Spec.Emoji, h.Spec.Title, h.Spec.Price)
		ebitenutil.DebugPrintAt(screen, label, int(x)+16, int(y)-6)
	}
}

func (s *ExperienceScene) drawHUD(screen *ebiten.Image, progress float64) {
	ebitenutil.DebugPrintAt(screen, s.cfg.Name, 16, 12)
	ebitenutil.DebugPrintAt(screen, s.cfg.Tagline, 16, 28)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("scroll %3.0f%%", progress*100), 16, config.GameWindowHeight-24)

	if s.cart != nil {
		cartLine := fmt.Sprintf("cart: %d item(s)  $%.2f", s.cart.Len(), s.cart.Total())
		ebitenutil.DebugPrintAt(screen, cartLine, config.GameWindowWidth-220, 12)
	}

	if s.countdown != nil {
		now := time.Now()
		var line string
		switch s.countdown.Status(now) {
		case wpajax.StatusBloomingSoon:
			line = "blooming soon: " + s.countdown.Label(now)
		case wpajax.StatusNowBlooming:
			line = "now blooming"
		default:
			line = "available now"
		}
		ebitenutil.DebugPrintAt(screen, line, config.GameWindowWidth/2-80, 12)
	}
}

func themesFromConfig(cfgs []config.ThemeConfig) ([]theme.Theme, error) {
	themes := make([]theme.Theme, 0, len(cfgs))
	for _, tc := range cfgs {
		th := theme.Theme{Name: tc.Name}
		var err error
		if th.Primary, err = parseOr(tc.Primary, "#FFFFFF"); err != nil {
			return nil, fmt.Errorf("theme %s: %w", tc.Name, err)
		}
		if th.Secondary, err = parseOr(tc.Secondary, "#C0C0C0"); err != nil {
			return nil, fmt.Errorf("theme %s: %w", tc.Name, err)
		}
		if th.Accent, err = parseOr(tc.Accent, "#FFFFFF"); err != nil {
			return nil, fmt.Errorf("theme %s: %w", tc.Name, err)
		}
		if th.Background, err = parseOr(tc.Background, "#0A0A0A"); err != nil {
			return nil, fmt.Errorf("theme %s: %w", tc.Name, err)
		}
		themes = append(themes, th)
	}
	return themes, nil
}

func parseOr(hex, fallback string) (theme.Color, error) {
	if hex == "" {
		hex = fallback
	}
	return theme.ParseHex(hex)
}

func fieldConfigFromSpec(spec config.ParticleSpec) systems.FieldConfig {
	shape := systems.ShapeSphereShell
	switch spec.Shape {
	case "sphere":
		shape = systems.ShapeSphereVolume
	case "box":
		shape = systems.ShapeBox
	}
	reset := systems.ResetRespawn
	if spec.Reset == "bounce" {
		reset = systems.ResetBounce
	}
	return systems.FieldConfig{
		Count:          spec.Count,
		Shape:          shape,
		Radius:         systems.Range{Min: spec.RadiusMin, Max: spec.RadiusMax},
		BoxExtents:     systems.Vec3{X: spec.BoxX, Y: spec.BoxY, Z: spec.BoxZ},
		VelX:           systems.Range{Min: spec.VelMin, Max: spec.VelMax},
		VelY:           systems.Range{Min: spec.VelMin + spec.DriftY, Max: spec.VelMax + spec.DriftY},
		VelZ:           systems.Range{Min: spec.VelMin, Max: spec.VelMax},
		OscAmplitude:   spec.OscAmplitude,
		OscFrequency:   spec.OscFrequency,
		Reset:          reset,
		BoundRadius:    spec.BoundRadius,
		BoundAxisLimit: spec.BoundY,
	}
}
