//go:build js

package birddex

import (
	"syscall/js"

	"github.com/phanxgames/holocard"
)

// PlatformEnvironment reads the browser the wasm build runs in: the real
// user agent, the touch point count and whether DeviceOrientationEvent
// exists and is permission gated.
func PlatformEnvironment(viewportWidth int) holocard.Environment {
	env := holocard.Environment{ViewportWidth: viewportWidth}
	global := js.Global()

	if nav := global.Get("navigator"); nav.Truthy() {
		if ua := nav.Get("userAgent"); ua.Type() == js.TypeString {
			env.UserAgent = ua.String()
		}
		if n := nav.Get("maxTouchPoints"); n.Type() == js.TypeNumber {
			env.MaxTouchPoints = n.Int()
		}
	}

	event := global.Get("DeviceOrientationEvent")
	hasEvent := event.Type() == js.TypeFunction || event.Type() == js.TypeObject
	hasRequest := hasEvent && event.Get("requestPermission").Type() == js.TypeFunction
	env.Orientation = orientationSupport(hasEvent, hasRequest)
	return env
}
