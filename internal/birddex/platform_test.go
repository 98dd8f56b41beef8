package birddex

import (
	"testing"

	"github.com/phanxgames/holocard"
)

func TestOrientationSupport(t *testing.T) {
	tests := []struct {
		name       string
		hasEvent   bool
		hasRequest bool
		want       holocard.OrientationSupport
	}{
		{"no sensor API", false, false, holocard.OrientationUnsupported},
		{"request without event", false, true, holocard.OrientationUnsupported},
		{"open event", true, false, holocard.OrientationAvailable},
		{"permission gated", true, true, holocard.OrientationGated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := orientationSupport(tt.hasEvent, tt.hasRequest); got != tt.want {
				t.Errorf("orientationSupport(%v, %v) = %v, want %v", tt.hasEvent, tt.hasRequest, got, tt.want)
			}
		})
	}
}
