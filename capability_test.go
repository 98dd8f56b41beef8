package holocard

import "testing"

const (
	uaDesktop = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
	uaIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1"
	uaAndroid = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Mobile Safari/537.36"
)

func TestClassifyUserAgent(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want bool
	}{
		{"desktop chrome", uaDesktop, false},
		{"iphone safari", uaIPhone, true},
		{"android chrome", uaAndroid, true},
		{"lowercase ipad", "something ipad something", true},
		{"opera mini", "Opera/9.80 (J2ME/MIDP; Opera Mini/9.80)", true},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyUserAgent(tt.ua); got != tt.want {
				t.Errorf("ClassifyUserAgent(%q) = %v, want %v", tt.ua, got, tt.want)
			}
		})
	}
}

func TestDetectOrientationSupport(t *testing.T) {
	tests := []struct {
		ua   string
		want OrientationSupport
	}{
		{uaDesktop, OrientationUnsupported},
		{uaIPhone, OrientationGated},
		{uaAndroid, OrientationAvailable},
	}
	for _, tt := range tests {
		if got := DetectOrientationSupport(tt.ua); got != tt.want {
			t.Errorf("DetectOrientationSupport(%q) = %d, want %d", tt.ua, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		env  Environment
		want bool
	}{
		{"desktop wide", Environment{UserAgent: uaDesktop, ViewportWidth: 1440}, false},
		{"desktop narrow without touch", Environment{UserAgent: uaDesktop, ViewportWidth: 500}, false},
		{"desktop narrow with touch", Environment{UserAgent: uaDesktop, ViewportWidth: 500, MaxTouchPoints: 10}, true},
		{"touch laptop wide", Environment{UserAgent: uaDesktop, ViewportWidth: 1440, MaxTouchPoints: 10}, false},
		{"phone", Environment{UserAgent: uaIPhone, ViewportWidth: 390, MaxTouchPoints: 5}, true},
		{"phone landscape wide", Environment{UserAgent: uaAndroid, ViewportWidth: 900}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := Classify(tt.env)
			if caps.TouchPrimary != tt.want {
				t.Errorf("TouchPrimary = %v, want %v", caps.TouchPrimary, tt.want)
			}
			if caps.PointerPrimary() == tt.want {
				t.Errorf("PointerPrimary = %v, want %v", caps.PointerPrimary(), !tt.want)
			}
		})
	}
}

func TestSupportsOrientationPermissionGate(t *testing.T) {
	if SupportsOrientationPermissionGate(Environment{Orientation: OrientationAvailable}) {
		t.Error("available orientation should not be gated")
	}
	if SupportsOrientationPermissionGate(Environment{Orientation: OrientationUnsupported}) {
		t.Error("unsupported orientation should not be gated")
	}
	if !SupportsOrientationPermissionGate(Environment{Orientation: OrientationGated}) {
		t.Error("gated orientation should report the gate")
	}
}
