package curve

import (
	"errors"
	"math"
	"testing"
)

func TestBezierEndpoints(t *testing.T) {
	cases := [][]float64{
		{0, 0, 0.25, 0.1, 0.25, 1, 1, 1},
		{-3, 7, 12, -4, 5.5, 9, 100, -20},
		{1, 2, 3, 4, 5, 6, 7, 8},
	}
	for _, pts := range cases {
		start, err := Bezier(0, pts...)
		if err != nil {
			t.Fatalf("Bezier(0) error: %v", err)
		}
		if start.X != pts[0] || start.Y != pts[1] {
			t.Errorf("Bezier(0, %v) = %v, want (%v, %v)", pts, start, pts[0], pts[1])
		}

		end, err := Bezier(1, pts...)
		if err != nil {
			t.Fatalf("Bezier(1) error: %v", err)
		}
		if end.X != pts[6] || end.Y != pts[7] {
			t.Errorf("Bezier(1, %v) = %v, want (%v, %v)", pts, end, pts[6], pts[7])
		}
	}
}

func TestBezierMidpoint(t *testing.T) {
	// A straight line with evenly spaced control points is linear in t.
	v, err := Bezier(0.5, 0, 0, 1, 1, 2, 2, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v.X-1.5) > 1e-12 || math.Abs(v.Y-1.5) > 1e-12 {
		t.Errorf("Bezier(0.5) = %v, want (1.5, 1.5)", v)
	}
}

func TestBezierArity(t *testing.T) {
	for _, n := range []int{0, 4, 7, 9} {
		_, err := Bezier(0.5, make([]float64, n)...)
		if !errors.Is(err, ErrArity) {
			t.Errorf("Bezier with %d coordinates: err = %v, want ErrArity", n, err)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.3, 0.3},
		{1, 1},
		{2.5, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 1); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestCubicAnchors(t *testing.T) {
	e := Cubic(0, 1, 0.1, 0.9)
	if got := e(0); got != 0 {
		t.Errorf("e(0) = %v, want 0", got)
	}
	if got := e(1); got != 1 {
		t.Errorf("e(1) = %v, want 1", got)
	}
	if got := e(-0.5); got != 0 {
		t.Errorf("e(-0.5) = %v, want clamped 0", got)
	}
	if got := e(3); got != 1 {
		t.Errorf("e(3) = %v, want clamped 1", got)
	}
}

func TestCubicUsesBezierY(t *testing.T) {
	e := CubicPoints([4]float64{0.25, 0.1, 0.25, 1})
	want, _ := Bezier(0.4, 0, 0, 0.25, 0.1, 0.25, 1, 1, 1)
	if got := e(0.4); got != want.Y {
		t.Errorf("e(0.4) = %v, want %v", got, want.Y)
	}
}

func TestNamed(t *testing.T) {
	e, err := Named("In-Out-Quad")
	if err != nil {
		t.Fatalf("Named error: %v", err)
	}
	if e(0) != 0 || e(1) != 1 {
		t.Errorf("in-out-quad endpoints = %v, %v", e(0), e(1))
	}
	if got := e(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("in-out-quad(0.5) = %v, want 0.5", got)
	}

	if _, err := Named("wobble"); !errors.Is(err, ErrUnknownEasing) {
		t.Errorf("Named(wobble) err = %v, want ErrUnknownEasing", err)
	}
}
