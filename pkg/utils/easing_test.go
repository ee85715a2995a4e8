package utils

import (
	"math"
	"testing"
)

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.5},
		{"终点", 1.0, 1.0},
		{"四分之一", 0.25, 0.15625}, // 3/16 - 2/64
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Smoothstep(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Smoothstep(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestJumpCurve(t *testing.T) {
	tests := []struct {
		name      string
		countdown int
		expected  int
	}{
		{"未起跳", 50, 100},
		{"倒计时超出起点", 60, 100},
		{"中点", 35, 150},
		{"到达终点", 20, 200},
		{"停留终点", 0, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := JumpCurve(tt.countdown, 100, 200)
			if result != tt.expected {
				t.Errorf("JumpCurve(%d, 100, 200) = %d, 期望 %d", tt.countdown, result, tt.expected)
			}
		})
	}
}

func TestJumpCurveMonotonic(t *testing.T) {
	prev := JumpCurve(50, 0, 300)
	for cd := 49; cd >= 0; cd-- {
		cur := JumpCurve(cd, 0, 300)
		if cur < prev {
			t.Fatalf("JumpCurve not monotonic at countdown %d: %d < %d", cd, cur, prev)
		}
		prev = cur
	}
}
