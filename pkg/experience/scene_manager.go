package experience

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/skyyrose/showroom/pkg/config"
)

// SceneFactory creates the scene for a collection kind. Injected by the
// app layer to avoid a dependency cycle between the manager and concrete
// scenes.
type SceneFactory func(kind config.CollectionKind) Scene

// SceneManager controls which scene is active. Only one scene's Update and
// Draw run at any given time; switching away from a Disposable scene
// releases its resources before the new scene takes over.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates a manager with no active scene; use SwitchTo or
// LoadCollection to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory installs the factory used by LoadCollection.
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo makes scene the active scene. The previous scene, if it
// implements Disposable, is disposed first.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if d, ok := sm.currentScene.(Disposable); ok && sm.currentScene != scene {
		d.Dispose()
	}
	sm.currentScene = scene
}

// CurrentScene returns the active scene, or nil if none is set.
func (sm *SceneManager) CurrentScene() Scene {
	return sm.currentScene
}

// LoadCollection creates and activates the scene for the given collection.
func (sm *SceneManager) LoadCollection(kind config.CollectionKind) {
	log.Printf("[SceneManager] loading collection: %s", kind)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] error: scene factory not set")
		return
	}

	newScene := sm.sceneFactory(kind)
	if newScene == nil {
		log.Printf("[SceneManager] error: no scene for collection %s", kind)
		return
	}
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] switched to collection: %s", kind)
}

// Update updates the currently active scene, if any.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene, if any.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
