// pkg/planar/planar.go - Ring geometry kernel: winding, containment and intersection tests
package planar

import (
	"math"

	"github.com/valpere/geoconv/pkg/geom"
)

// Epsilon is the tolerance below which a cross product is treated as zero
const Epsilon = 1e-7

// SignedDoubleArea sums (x[i+1]-x[i])*(y[i+1]+y[i]) over consecutive ring
// edges. The ring is expected to be closed.
func SignedDoubleArea(ring geom.LineString) float64 {
	total := 0.0
	for i := 0; i+1 < len(ring); i++ {
		p, q := ring[i], ring[i+1]
		total += (q[0] - p[0]) * (q[1] + p[1])
	}
	return total
}

// IsClockwise reports the winding of a ring. Degenerate rings with zero area
// count as clockwise.
func IsClockwise(ring geom.LineString) bool {
	return SignedDoubleArea(ring) >= 0
}

// Orient returns ring with the requested winding, reversing a copy when the
// current winding disagrees
func Orient(ring geom.LineString, clockwise bool) geom.LineString {
	if IsClockwise(ring) == clockwise {
		return ring
	}
	return ring.Reverse()
}

// PointInRing runs the even-odd crossing number test. Horizontal edges never
// count as crossings.
func PointInRing(p geom.Point, ring geom.LineString) bool {
	x, y := p[0], p[1]
	inside := false
	for i := 0; i+1 < len(ring); i++ {
		a, b := ring[i], ring[i+1]
		if (a[1] > y) != (b[1] > y) {
			crossX := (b[0]-a[0])*(y-a[1])/(b[1]-a[1]) + a[0]
			if x < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// SegmentsIntersect reports whether segment p1-p2 and segment q1-q2 share at
// least one point. Parallel segments intersect only when collinear and
// overlapping; zero-length segments behave as points.
func SegmentsIntersect(p1, p2, q1, q2 geom.Point) bool {
	rx, ry := p2[0]-p1[0], p2[1]-p1[1]
	sx, sy := q2[0]-q1[0], q2[1]-q1[1]
	qpx, qpy := q1[0]-p1[0], q1[1]-p1[1]

	denom := cross(rx, ry, sx, sy)
	if math.Abs(denom) < Epsilon {
		return collinearOverlap(p1, p2, q1, q2)
	}

	t := cross(qpx, qpy, sx, sy) / denom
	u := cross(qpx, qpy, rx, ry) / denom
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

func collinearOverlap(p1, p2, q1, q2 geom.Point) bool {
	rx, ry := p2[0]-p1[0], p2[1]-p1[1]
	sx, sy := q2[0]-q1[0], q2[1]-q1[1]
	rr := rx*rx + ry*ry
	ss := sx*sx + sy*sy

	switch {
	case rr < Epsilon && ss < Epsilon:
		return nearlyEqual(p1, q1)
	case rr < Epsilon:
		return onSegment(p1, q1, q2)
	case ss < Epsilon:
		return onSegment(q1, p1, p2)
	}

	qpx, qpy := q1[0]-p1[0], q1[1]-p1[1]
	if math.Abs(cross(qpx, qpy, rx, ry)) >= Epsilon {
		// parallel but on different lines
		return false
	}

	// project q onto p's parameter space and test the interval against [0, 1]
	t0 := (qpx*rx + qpy*ry) / rr
	t1 := t0 + (sx*rx+sy*ry)/rr
	lo, hi := math.Min(t0, t1), math.Max(t0, t1)
	return lo <= 1 && hi >= 0
}

// onSegment reports whether p lies on segment a-b within Epsilon
func onSegment(p, a, b geom.Point) bool {
	abx, aby := b[0]-a[0], b[1]-a[1]
	apx, apy := p[0]-a[0], p[1]-a[1]
	if math.Abs(cross(apx, apy, abx, aby)) >= Epsilon {
		return false
	}
	dot := apx*abx + apy*aby
	return dot >= 0 && dot <= abx*abx+aby*aby
}

func nearlyEqual(a, b geom.Point) bool {
	return math.Abs(a[0]-b[0]) < Epsilon && math.Abs(a[1]-b[1]) < Epsilon
}

func cross(ax, ay, bx, by float64) float64 {
	return ax*by - ay*bx
}

// RingsIntersect reports whether any edge of a meets any edge of b
func RingsIntersect(a, b geom.LineString) bool {
	for i := 0; i+1 < len(a); i++ {
		for j := 0; j+1 < len(b); j++ {
			if SegmentsIntersect(a[i], a[i+1], b[j], b[j+1]) {
				return true
			}
		}
	}
	return false
}

// RingContainsRing reports whether inner lies strictly inside outer: the
// boundaries must not touch or cross and the first vertex of inner must be
// inside outer.
func RingContainsRing(outer, inner geom.LineString) bool {
	if len(inner) == 0 {
		return false
	}
	return !RingsIntersect(outer, inner) && PointInRing(inner[0], outer)
}
