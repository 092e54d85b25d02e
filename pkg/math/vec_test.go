package math

import (
	"math"
	"testing"
)

func TestVec3Add(t *testing.T) {
	got := Vec3{1, 2, 3}.Add(Vec3{3, 4, 5})
	want := Vec3{4, 6, 8}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 0}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		yaw  float32
		want Vec3
	}{
		{0, Vec3{0, 0, 1}},
		{math.Pi / 2, Vec3{1, 0, 0}},
		{-math.Pi / 2, Vec3{-1, 0, 0}},
		{math.Pi, Vec3{0, 0, -1}},
	}
	for _, tt := range tests {
		if got := Heading(tt.yaw); !vecNear(got, tt.want, 1e-6) {
			t.Errorf("Heading(%f) = %v, want %v", tt.yaw, got, tt.want)
		}
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		t, want float32
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{0.25, 0.15625},
		{0.75, 0.84375},
	}
	for _, tt := range tests {
		if got := Smoothstep(tt.t); got != tt.want {
			t.Errorf("Smoothstep(%f) = %f, want %f", tt.t, got, tt.want)
		}
	}
}

func TestSmoothstepMonotonic(t *testing.T) {
	prev := Smoothstep(0)
	for i := 1; i <= 100; i++ {
		cur := Smoothstep(float32(i) / 100)
		if cur < prev {
			t.Fatalf("Smoothstep decreased at step %d: %f < %f", i, cur, prev)
		}
		prev = cur
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Lerp(2, 4, 0.5) = %f, want 3", got)
	}
	if got := Lerp(0, -1, 1); got != -1 {
		t.Errorf("Lerp(0, -1, 1) = %f, want -1", got)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(90); math.Abs(float64(got)-math.Pi/2) > 1e-6 {
		t.Errorf("Radians(90) = %f, want pi/2", got)
	}
	if got := Degrees(Radians(45)); math.Abs(float64(got)-45) > 1e-4 {
		t.Errorf("Degrees(Radians(45)) = %f, want 45", got)
	}
}
