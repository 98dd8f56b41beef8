//go:build !js

package birddex

import (
	"runtime"
	"testing"

	"github.com/phanxgames/holocard"
)

func TestPlatformEnvironment(t *testing.T) {
	env := PlatformEnvironment(1024)
	if env.ViewportWidth != 1024 || env.UserAgent == "" {
		t.Errorf("env = %+v", env)
	}
	caps := holocard.Classify(env)
	switch runtime.GOOS {
	case "ios", "android":
		if !caps.TouchPrimary {
			t.Error("mobile platform not touch-primary")
		}
	default:
		if caps.TouchPrimary || env.Orientation != holocard.OrientationUnsupported {
			t.Errorf("desktop classified as %+v", caps)
		}
	}
}
