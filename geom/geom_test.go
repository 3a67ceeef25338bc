// geom/geom_test.go
// Copyright(c) 2026 deconflict contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geom

import (
	"testing"

	"github.com/avhart/deconflict/rand"
)

func TestCirclesIntersect(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{
			name:     "Overlapping",
			a:        Circle{Center: [2]float32{0, 0}, Radius: 10},
			b:        Circle{Center: [2]float32{5, 0}, Radius: 10},
			expected: true,
		},
		{
			name:     "Disjoint",
			a:        Circle{Center: [2]float32{0, 0}, Radius: 10},
			b:        Circle{Center: [2]float32{50, 0}, Radius: 10},
			expected: false,
		},
		{
			name:     "ExactlyTouching", // boundary-inclusive
			a:        Circle{Center: [2]float32{0, 0}, Radius: 10},
			b:        Circle{Center: [2]float32{25, 0}, Radius: 15},
			expected: true,
		},
		{
			name:     "Contained",
			a:        Circle{Center: [2]float32{0, 0}, Radius: 10},
			b:        Circle{Center: [2]float32{1, 1}, Radius: 2},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclesIntersect(tc.a, tc.b); got != tc.expected {
				t.Errorf("CirclesIntersect(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}

	// Symmetry over random circle pairs.
	rand.Seed(1)
	for i := 0; i < 64; i++ {
		r := func() float32 { return -100 + 200*rand.Float32() }
		a := Circle{Center: [2]float32{r(), r()}, Radius: 1 + 50*rand.Float32()}
		b := Circle{Center: [2]float32{r(), r()}, Radius: 1 + 50*rand.Float32()}
		if CirclesIntersect(a, b) != CirclesIntersect(b, a) {
			t.Errorf("CirclesIntersect not symmetric for %v, %v", a, b)
		}
	}
}

func TestCircleContainsPoint(t *testing.T) {
	c := Circle{Center: [2]float32{10, 10}, Radius: 5}
	if !c.ContainsPoint([2]float32{12, 12}) {
		t.Errorf("point inside circle not contained")
	}
	if !c.ContainsPoint([2]float32{15, 10}) {
		t.Errorf("point on circle boundary not contained")
	}
	if c.ContainsPoint([2]float32{20, 20}) {
		t.Errorf("point outside circle contained")
	}
}

func TestPolygonContainsPoint(t *testing.T) {
	square := Polygon{Vertices: [][2]float32{{0, 0}, {0, 10}, {10, 10}, {10, 0}}}
	if !square.ContainsPoint([2]float32{5, 5}) {
		t.Errorf("center of square not contained")
	}
	if square.ContainsPoint([2]float32{15, 5}) {
		t.Errorf("point outside square contained")
	}

	// Degenerate polygons contain nothing, everywhere.
	for _, degenerate := range []Polygon{
		{},
		{Vertices: [][2]float32{{0, 0}}},
		{Vertices: [][2]float32{{0, 0}, {10, 10}}},
	} {
		for _, p := range [][2]float32{{0, 0}, {5, 5}, {-3, 7}} {
			if degenerate.ContainsPoint(p) {
				t.Errorf("polygon with %d vertices contains %v", len(degenerate.Vertices), p)
			}
		}
	}
}

func TestCirclePolygonIntersect(t *testing.T) {
	square := Polygon{Vertices: [][2]float32{{0, 0}, {0, 10}, {10, 10}, {10, 0}}}

	testCases := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"CenterInside", Circle{Center: [2]float32{5, 5}, Radius: 1}, true},
		{"VertexInCircle", Circle{Center: [2]float32{-1, -1}, Radius: 2}, true},
		{"EdgeCrossing", Circle{Center: [2]float32{-2, 5}, Radius: 3}, true},
		{"EdgeTouching", Circle{Center: [2]float32{-3, 5}, Radius: 3}, true},
		{"WellClear", Circle{Center: [2]float32{-20, 5}, Radius: 3}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclePolygonIntersect(tc.c, square); got != tc.expected {
				t.Errorf("CirclePolygonIntersect(%v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestPolygonsIntersect(t *testing.T) {
	square := func(x, y, size float32) Polygon {
		return Polygon{Vertices: [][2]float32{
			{x, y}, {x, y + size}, {x + size, y + size}, {x + size, y}}}
	}
	diamond := Polygon{Vertices: [][2]float32{{5, 0}, {10, 5}, {5, 10}, {0, 5}}}

	testCases := []struct {
		name     string
		a, b     Polygon
		expected bool
	}{
		{"Overlapping", square(0, 0, 10), square(5, 5, 10), true},
		{"Disjoint", square(0, 0, 10), square(20, 20, 5), false},
		{"Contained", square(0, 0, 10), square(2, 2, 2), true},
		{"DiamondInSquare", square(0, 0, 10), diamond, true},
		{"DiamondClearOfSquare", square(12, 12, 10), diamond, false},
		// Disjoint on a diagonal axis even though the bounding boxes
		// overlap; only the diamond's edge normals separate these.
		{"DiagonalSeparation", diamond, square(8, 8, 4), false},
		{"DegenerateFirst", Polygon{Vertices: [][2]float32{{0, 0}, {1, 1}}}, square(0, 0, 10), false},
		{"DegenerateSecond", square(0, 0, 10), Polygon{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PolygonsIntersect(tc.a, tc.b); got != tc.expected {
				t.Errorf("PolygonsIntersect = %v, expected %v", got, tc.expected)
			}
			if got := PolygonsIntersect(tc.b, tc.a); got != tc.expected {
				t.Errorf("PolygonsIntersect (swapped) = %v, expected %v", got, tc.expected)
			}
		})
	}
}
