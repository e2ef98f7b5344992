package core

import "testing"

func TestColorFromRGB8(t *testing.T) {
	tests := []struct {
		in   [3]uint8
		want Color
	}{
		{[3]uint8{255, 0, 0}, Color{1, 0, 0, 1}},
		{[3]uint8{0, 0, 0}, Color{0, 0, 0, 1}},
		{[3]uint8{255, 255, 255}, ColorWhite},
	}
	for _, tt := range tests {
		if got := ColorFromRGB8(tt.in); got != tt.want {
			t.Errorf("ColorFromRGB8(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}

	mid := ColorFromRGB8([3]uint8{190, 76, 0})
	if mid.R <= 0.74 || mid.R >= 0.75 || mid.G <= 0.29 || mid.G >= 0.3 {
		t.Errorf("ColorFromRGB8: unexpected conversion %v", mid)
	}
}

func TestViewportAspectRatio(t *testing.T) {
	if got := (Viewport{Width: 800, Height: 600}).AspectRatio(); got != float32(800)/float32(600) {
		t.Errorf("AspectRatio: expected %v, got %v", float32(800)/float32(600), got)
	}
	if got := (Viewport{Width: 800}).AspectRatio(); got != 0 {
		t.Errorf("AspectRatio: expected 0 for zero height, got %v", got)
	}
}
