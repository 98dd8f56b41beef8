package birddex

import "github.com/phanxgames/holocard"

// orientationSupport maps what the browser exposes on window to an
// OrientationSupport. Safari defines DeviceOrientationEvent.requestPermission
// and withholds readings until it resolves.
func orientationSupport(hasEvent, hasRequestPermission bool) holocard.OrientationSupport {
	switch {
	case !hasEvent:
		return holocard.OrientationUnsupported
	case hasRequestPermission:
		return holocard.OrientationGated
	}
	return holocard.OrientationAvailable
}
