//go:build mobile

// Package mobile provides the ebitenmobile binding entry point.
//
// Used to build Android (.aar) and iOS (.xcframework) packages; the
// ebitenmobile tool calls init() automatically. This file only compiles
// with -tags mobile:
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.skyyrose.showroom -o build/android/showroom.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Showroom.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/skyyrose/showroom/pkg/app"
	"github.com/skyyrose/showroom/pkg/config"
	"github.com/skyyrose/showroom/pkg/embedded"
)

func init() {
	// configFS is declared in embed.go.
	embedded.Init(configFS)

	cfg := app.Config{
		Verbose:    true,
		Collection: string(config.CollectionBlackRose),
		AssetDir:   "assets",
	}

	showroomApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("showroom initialization failed: %v", err)
	}

	mobile.SetGame(showroomApp)
}

// Dummy is an empty exported function so ebitenmobile recognizes the package.
func Dummy() {}
