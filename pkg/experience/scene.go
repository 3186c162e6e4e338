package experience

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one showroom page (a collection experience or the
// pre-order page). Each scene owns its own update and rendering logic.
type Scene interface {
	// Update advances the scene logic.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Disposable is an optional interface for scenes that hold renderer
// resources. Dispose is called exactly once, when the scene is switched
// away from or the controller stops.
type Disposable interface {
	Dispose()
}
