package config

// Logical window size. Independent of the actual window; ebiten handles
// the scaling.
const (
	GameWindowWidth  = 1280
	GameWindowHeight = 800
)
