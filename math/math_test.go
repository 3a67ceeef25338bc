// math/math_test.go
// Copyright(c) 2026 deconflict contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"testing"

	"github.com/avhart/deconflict/rand"
)

func TestNormalize2f(t *testing.T) {
	v := Normalize2f([2]float32{3, 4})
	if Abs(v[0]-0.6) > 1e-6 || Abs(v[1]-0.8) > 1e-6 {
		t.Errorf("Normalize2f((3,4)) = %v, expected (0.6, 0.8)", v)
	}

	// A zero vector must come back as zero, not NaN.
	z := Normalize2f([2]float32{0, 0})
	if z[0] != 0 || z[1] != 0 {
		t.Errorf("Normalize2f of zero vector = %v, expected zero", z)
	}
}

func TestLerp(t *testing.T) {
	if Lerp(0, 2, 10) != 2 || Lerp(1, 2, 10) != 10 || Lerp(0.5, 2, 10) != 6 {
		t.Errorf("Lerp endpoints/midpoint: got %f %f %f",
			Lerp(0, 2, 10), Lerp(1, 2, 10), Lerp(0.5, 2, 10))
	}

	// Lerp2f interpolates each component the way Lerp does.
	a, b := [2]float32{1, -3}, [2]float32{5, 7}
	for _, x := range []float32{0, 0.25, 0.5, 1} {
		v := Lerp2f(x, a, b)
		if v[0] != Lerp(x, a[0], b[0]) || v[1] != Lerp(x, a[1], b[1]) {
			t.Errorf("Lerp2f(%f, %v, %v) = %v, expected per-component Lerp", x, a, b, v)
		}
	}
}

func TestPointInPolygon(t *testing.T) {
	testCases := []struct {
		name     string
		point    [2]float32
		polygon  [][2]float32
		expected bool
	}{
		{
			name:     "PointInsideSimpleSquare",
			point:    [2]float32{1, 1},
			polygon:  [][2]float32{{0, 0}, {0, 2}, {2, 2}, {2, 0}},
			expected: true,
		},
		{
			name:     "PointToLeftOfQuad",
			point:    [2]float32{-.2, 0.2},
			polygon:  [][2]float32{{.01, 1}, {20, 2}, {20, -2}, {.01, -1}},
			expected: false,
		},
		{
			name:     "PointOutsideSimpleSquare",
			point:    [2]float32{3, 3},
			polygon:  [][2]float32{{0, 0}, {0, 2}, {2, 2}, {2, 0}},
			expected: false,
		},
		{
			name:     "PointByVertex",
			point:    [2]float32{-0.001, 0},
			polygon:  [][2]float32{{0, 0}, {0, 2}, {2, 2}, {2, 0}},
			expected: false,
		},
		{
			name:     "PointInsideComplexPolygon",
			point:    [2]float32{3, 3},
			polygon:  [][2]float32{{0, 0}, {0, 6}, {6, 6}, {6, 0}, {3, 3}},
			expected: true,
		},
		{
			name:     "PointOutsideComplexPolygon",
			point:    [2]float32{7, 7},
			polygon:  [][2]float32{{0, 0}, {0, 6}, {6, 6}, {6, 0}, {3, 3}},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := PointInPolygon(tc.point, tc.polygon)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v for point %v and polygon %v",
					tc.expected, result, tc.point, tc.polygon)
			}
		})
	}
}

func TestPointSegmentDistance(t *testing.T) {
	refSampled := func(p, v, w [2]float32) float32 {
		const n = 16384
		dmin := float32(1e30)
		for i := 0; i < n; i++ {
			t := float32(i) / float32(n-1)
			pp := Lerp2f(t, v, w)
			dmin = Min(dmin, Distance2f(pp, p))
		}
		return dmin
	}

	cases := []struct {
		p, v, w [2]float32
		dist    float32
	}{
		{p: [2]float32{1, 1}, v: [2]float32{0, 0}, w: [2]float32{2, 2}, dist: 0},
		{p: [2]float32{-2, -2}, v: [2]float32{-1, -1}, w: [2]float32{2, 2}, dist: 1.414214},
	}

	for _, c := range cases {
		d := PointSegmentDistance(c.p, c.v, c.w)
		if Abs(d-c.dist) > .001 {
			t.Errorf("p %v v %v w %v expected %f got %f", c.p, c.v, c.w, c.dist, d)
		}
	}

	// Do some randoms
	rand.Seed(1)
	for i := 0; i < 32; i++ {
		r := func() float32 { return -10 + 20*rand.Float32() }
		p := [2]float32{r(), r()}
		v := [2]float32{r(), r()}
		w := [2]float32{r(), r()}
		ref := refSampled(p, v, w)
		d := PointSegmentDistance(p, v, w)
		if Abs(d-ref) > .001 {
			t.Errorf("p %v v %v w %v expected %f got %f", p, v, w, ref, d)
		}
	}
}

func TestLineLineIntersect(t *testing.T) {
	p, ok := LineLineIntersect([2]float32{0, -1}, [2]float32{0, 1}, [2]float32{-1, 0}, [2]float32{1, 0})
	if !ok {
		t.Errorf("no intersection found for perpendicular lines through the origin")
	} else if Abs(p[0]) > 1e-6 || Abs(p[1]) > 1e-6 {
		t.Errorf("intersection %v, expected the origin", p)
	}

	if _, ok := LineLineIntersect([2]float32{0, 0}, [2]float32{1, 1}, [2]float32{0, 1}, [2]float32{1, 2}); ok {
		t.Errorf("found an intersection for parallel lines")
	}
}
