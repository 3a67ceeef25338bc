// geom/geom.go
// Copyright(c) 2026 deconflict contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package geom provides the shapes used for overlap testing between
// aircraft protected zones and static infrastructure footprints, along
// with the intersection tests between them. Everything here is exact 2D
// geometry over local tangent-plane coordinates in feet; altitude is
// handled by the callers.
package geom

import (
	"github.com/avhart/deconflict/math"
)

// Circle is the protected-zone proxy for a moving body: a center position
// and radius, both in feet.
type Circle struct {
	Center [2]float32
	Radius float32
}

// Polygon is an ordered sequence of vertices with an implicit closing
// edge from the last vertex back to the first. Polygons with fewer than
// three vertices are degenerate and contain no points; the
// polygon-polygon test additionally assumes convexity.
type Polygon struct {
	Vertices [][2]float32
}

// CirclesIntersect reports whether the two circles overlap. The test is
// boundary-inclusive: two circles that exactly touch are intersecting.
func CirclesIntersect(a, b Circle) bool {
	return math.Distance2f(a.Center, b.Center) <= a.Radius+b.Radius
}

// ContainsPoint reports whether p is inside the circle, boundary
// included.
func (c Circle) ContainsPoint(p [2]float32) bool {
	return math.Distance2f(c.Center, p) <= c.Radius
}

// ContainsPoint reports whether p is strictly inside the polygon, via ray
// casting with the odd-crossings rule. Degenerate polygons with fewer
// than three vertices contain nothing.
func (poly Polygon) ContainsPoint(p [2]float32) bool {
	if len(poly.Vertices) < 3 {
		return false
	}
	return math.PointInPolygon(p, poly.Vertices)
}

// CirclePolygonIntersect reports whether the circle and polygon overlap:
// either the polygon contains the circle's center, a polygon vertex lies
// within the circle, or the circle's center is within its radius of one
// of the polygon's edges.
func CirclePolygonIntersect(c Circle, poly Polygon) bool {
	if poly.ContainsPoint(c.Center) {
		return true
	}

	n := len(poly.Vertices)
	for i, v := range poly.Vertices {
		if c.ContainsPoint(v) {
			return true
		}
		w := poly.Vertices[(i+1)%n]
		if math.PointSegmentDistance(c.Center, v, w) <= c.Radius {
			return true
		}
	}
	return false
}

// PolygonsIntersect reports whether the two convex polygons overlap,
// using the separating axis theorem: the candidate axes are the
// perpendicular normals of every edge of both polygons, and the polygons
// are disjoint iff the projected intervals onto some axis are disjoint.
func PolygonsIntersect(a, b Polygon) bool {
	if len(a.Vertices) < 3 || len(b.Vertices) < 3 {
		return false
	}

	for _, poly := range [2]Polygon{a, b} {
		n := len(poly.Vertices)
		for i, v := range poly.Vertices {
			w := poly.Vertices[(i+1)%n]
			axis := math.Perp2f(math.Sub2f(w, v))

			amin, amax := projectOntoAxis(a, axis)
			bmin, bmax := projectOntoAxis(b, axis)
			if amax < bmin || bmax < amin {
				return false
			}
		}
	}
	return true
}

// projectOntoAxis returns the interval covered by the polygon's vertices
// projected onto the given (not necessarily normalized) axis.
func projectOntoAxis(poly Polygon, axis [2]float32) (float32, float32) {
	pmin := math.Dot(poly.Vertices[0], axis)
	pmax := pmin
	for _, v := range poly.Vertices[1:] {
		p := math.Dot(v, axis)
		pmin = math.Min(pmin, p)
		pmax = math.Max(pmax, p)
	}
	return pmin, pmax
}
