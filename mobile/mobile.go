//go:build mobile

// Package mobile is the ebitenmobile binding entry for BirdDex.
//
// Build with:
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.phanxgames.birddex -o build/birddex.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/BirdDex.xcframework ./mobile
//
// Native code forwards motion sensor readings through SetDeviceOrientation
// or SetGravity and answers permission prompts with
// ResolveOrientationPermission.
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/phanxgames/holocard"
	"github.com/phanxgames/holocard/cardview"
	"github.com/phanxgames/holocard/internal/birddex"
)

// PermissionPrompter is implemented by native code to show the platform's
// motion permission prompt.
type PermissionPrompter interface {
	PromptOrientationPermission()
}

var (
	game      *birddex.Game
	requester = &cardview.DeferredRequester{}
	prompter  PermissionPrompter
)

func init() {
	var err error
	game, err = birddex.NewGame(birddex.Config{
		Environment: birddex.PlatformEnvironment(0),
	})
	if err != nil {
		log.Fatalf("[BirdDex] init: %v", err)
	}
	requester.OnRequest = func() {
		if prompter != nil {
			prompter.PromptOrientationPermission()
		}
	}
	game.Host().SetPermissionRequester(requester)
	mobile.SetGame(game)
}

// SetPermissionPrompter registers the native permission prompt.
func SetPermissionPrompter(p PermissionPrompter) {
	prompter = p
}

// ResolveOrientationPermission answers the permission prompt.
func ResolveOrientationPermission(granted bool) {
	requester.Resolve(granted)
}

// SetDeviceOrientation forwards a fused orientation reading in degrees.
func SetDeviceOrientation(beta, gamma float64) {
	game.Host().SetOrientation(beta, gamma)
}

// SetGravity forwards a raw gravity vector for devices without a fused
// orientation sensor.
func SetGravity(ax, ay, az float64) {
	beta, gamma := holocard.OrientationFromGravity(ax, ay, az)
	game.Host().SetOrientation(beta, gamma)
}

// Dummy keeps the package visible to ebitenmobile.
func Dummy() {}
