package utils

import "testing"

func TestWorldToScreen(t *testing.T) {
	x, y := WorldToScreen(150, 20, 100, 208)
	if x != 50 || y != 188 {
		t.Errorf("WorldToScreen = (%v, %v), want (50, 188)", x, y)
	}
}

func TestCameraFollow(t *testing.T) {
	tests := []struct {
		name                          string
		target, screen, level, wantCX float64
	}{
		{"near left edge", 50, 400, 1280, 0},
		{"middle", 640, 400, 1280, 440},
		{"near right edge", 1270, 400, 1280, 880},
		{"level narrower than screen", 100, 400, 300, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CameraFollow(tt.target, tt.screen, tt.level); got != tt.wantCX {
				t.Errorf("CameraFollow = %v, want %v", got, tt.wantCX)
			}
		})
	}
}
