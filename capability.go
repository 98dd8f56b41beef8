package holocard

import "regexp"

// MobileBreakpoint is the viewport width, in CSS pixels, below which a
// touch-capable host is treated as touch-primary.
const MobileBreakpoint = 768

var (
	mobileUA = regexp.MustCompile(`(?i)Android|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)
	appleUA  = regexp.MustCompile(`(?i)iPhone|iPad|iPod`)
)

// OrientationSupport describes how a platform delivers orientation readings.
type OrientationSupport uint8

const (
	OrientationUnsupported OrientationSupport = iota // no sensor API
	OrientationAvailable                             // readings flow without asking
	OrientationGated                                 // readings need a gesture-initiated grant
)

// Environment is what the host knows about the runtime.
type Environment struct {
	UserAgent     string
	ViewportWidth int
	// MaxTouchPoints is the number of simultaneous touches the host reports;
	// zero means no touch screen.
	MaxTouchPoints int
	Orientation    OrientationSupport
}

// Capabilities is the classification of an Environment.
type Capabilities struct {
	TouchPrimary bool
	Orientation  OrientationSupport
}

// PointerPrimary reports whether hover input drives the card.
func (c Capabilities) PointerPrimary() bool {
	return !c.TouchPrimary
}

// ClassifyUserAgent reports whether ua belongs to a mobile browser.
func ClassifyUserAgent(ua string) bool {
	return mobileUA.MatchString(ua)
}

// DetectOrientationSupport infers orientation support from a user agent for
// hosts that cannot query the platform directly. iOS browsers gate the
// sensor behind a permission prompt; other mobile browsers deliver readings
// freely; desktops have no sensor.
func DetectOrientationSupport(ua string) OrientationSupport {
	switch {
	case appleUA.MatchString(ua):
		return OrientationGated
	case mobileUA.MatchString(ua):
		return OrientationAvailable
	default:
		return OrientationUnsupported
	}
}

// Classify is a pure function of env.
func Classify(env Environment) Capabilities {
	touch := ClassifyUserAgent(env.UserAgent)
	if !touch && env.MaxTouchPoints > 0 && env.ViewportWidth > 0 && env.ViewportWidth < MobileBreakpoint {
		touch = true
	}
	return Capabilities{TouchPrimary: touch, Orientation: env.Orientation}
}

// SupportsOrientationPermissionGate reports whether orientation readings
// require an explicit asynchronous grant on this platform.
func SupportsOrientationPermissionGate(env Environment) bool {
	return env.Orientation == OrientationGated
}
