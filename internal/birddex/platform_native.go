//go:build !js

package birddex

import (
	"runtime"

	"github.com/phanxgames/holocard"
)

// PlatformEnvironment describes the device the game is compiled for. Native
// builds have no user agent, so one is synthesised for the classifier.
func PlatformEnvironment(viewportWidth int) holocard.Environment {
	switch runtime.GOOS {
	case "ios":
		return holocard.Environment{
			UserAgent:      "Mozilla/5.0 (iPhone; CPU iPhone OS like Mac OS X) Mobile",
			ViewportWidth:  viewportWidth,
			MaxTouchPoints: 5,
			Orientation:    orientationSupport(true, true),
		}
	case "android":
		return holocard.Environment{
			UserAgent:      "Mozilla/5.0 (Linux; Android) Mobile",
			ViewportWidth:  viewportWidth,
			MaxTouchPoints: 5,
			Orientation:    orientationSupport(true, false),
		}
	}
	return holocard.Environment{UserAgent: "Mozilla/5.0 (" + runtime.GOOS + ")", ViewportWidth: viewportWidth}
}
