// pkg/planar/planar_test.go - Unit tests for the ring geometry kernel
package planar

import (
	"testing"

	"github.com/valpere/geoconv/pkg/geom"
)

var (
	outerCW = geom.Line(geom.Pt(100, 0), geom.Pt(100, 1), geom.Pt(101, 1), geom.Pt(101, 0), geom.Pt(100, 0))
	holeCCW = geom.Line(geom.Pt(100.2, 0.2), geom.Pt(100.8, 0.2), geom.Pt(100.8, 0.8), geom.Pt(100.2, 0.8), geom.Pt(100.2, 0.2))
)

func TestSignedDoubleArea(t *testing.T) {
	if got := SignedDoubleArea(outerCW); got != 2 {
		t.Errorf("Expected signed double area 2, got %f", got)
	}
	if got := SignedDoubleArea(outerCW.Reverse()); got != -2 {
		t.Errorf("Expected signed double area -2 for reversed ring, got %f", got)
	}
}

func TestIsClockwise(t *testing.T) {
	tests := []struct {
		name string
		ring geom.LineString
		want bool
	}{
		{"outer clockwise", outerCW, true},
		{"hole counter-clockwise", holeCCW, false},
		{"reversed hole", holeCCW.Reverse(), true},
		{"zero area counts as clockwise", geom.Line(geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(0, 0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClockwise(tt.ring); got != tt.want {
				t.Errorf("IsClockwise() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrient(t *testing.T) {
	if !IsClockwise(Orient(holeCCW, true)) {
		t.Error("Expected Orient to produce a clockwise ring")
	}
	same := Orient(outerCW, true)
	if &same[0] != &outerCW[0] {
		t.Error("Expected correctly wound ring to be returned as is")
	}
}

func TestPointInRing(t *testing.T) {
	tests := []struct {
		name  string
		point geom.Point
		want  bool
	}{
		{"inside", geom.Pt(100.5, 0.5), true},
		{"outside right", geom.Pt(102, 0.5), false},
		{"outside above", geom.Pt(100.5, 2), false},
		{"on horizontal edge level", geom.Pt(99, 0), false},
		{"hole corner", geom.Pt(100.2, 0.2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRing(tt.point, outerCW); got != tt.want {
				t.Errorf("PointInRing(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestSegmentsIntersect(t *testing.T) {
	p := geom.Pt
	tests := []struct {
		name           string
		p1, p2, q1, q2 geom.Point
		want           bool
	}{
		{"crossing", p(0, 0), p(2, 2), p(0, 2), p(2, 0), true},
		{"touching at endpoint", p(0, 0), p(1, 1), p(1, 1), p(2, 0), true},
		{"disjoint", p(0, 0), p(1, 0), p(0, 1), p(1, 1), false},
		{"non-overlapping lines would cross", p(0, 0), p(1, 1), p(3, 0), p(2, 1), false},
		{"parallel apart", p(0, 0), p(2, 0), p(0, 1), p(2, 1), false},
		{"collinear overlap", p(0, 0), p(2, 0), p(1, 0), p(3, 0), true},
		{"collinear gap", p(0, 0), p(1, 0), p(2, 0), p(3, 0), false},
		{"collinear containment", p(0, 0), p(4, 0), p(1, 0), p(2, 0), true},
		{"degenerate on segment", p(1, 0), p(1, 0), p(0, 0), p(2, 0), true},
		{"degenerate off segment", p(1, 1), p(1, 1), p(0, 0), p(2, 0), false},
		{"both degenerate same point", p(1, 1), p(1, 1), p(1, 1), p(1, 1), true},
		{"both degenerate apart", p(1, 1), p(1, 1), p(2, 2), p(2, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.p1, tt.p2, tt.q1, tt.q2); got != tt.want {
				t.Errorf("SegmentsIntersect() = %v, want %v", got, tt.want)
			}
			if got := SegmentsIntersect(tt.q1, tt.q2, tt.p1, tt.p2); got != tt.want {
				t.Errorf("swapped SegmentsIntersect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRingContainsRing(t *testing.T) {
	touching := geom.Ring(geom.Pt(100, 0.2), geom.Pt(100.5, 0.2), geom.Pt(100.5, 0.5), geom.Pt(100, 0.5))
	crossing := geom.Ring(geom.Pt(100.5, 0.5), geom.Pt(102, 0.5), geom.Pt(102, 0.7), geom.Pt(100.5, 0.7))
	outside := geom.Ring(geom.Pt(200, 0), geom.Pt(200, 1), geom.Pt(201, 1), geom.Pt(201, 0))

	tests := []struct {
		name  string
		inner geom.LineString
		want  bool
	}{
		{"nested hole", holeCCW, true},
		{"touching boundary", touching, false},
		{"crossing boundary", crossing, false},
		{"disjoint", outside, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RingContainsRing(outerCW, tt.inner); got != tt.want {
				t.Errorf("RingContainsRing() = %v, want %v", got, tt.want)
			}
		})
	}

	if RingContainsRing(holeCCW, outerCW) {
		t.Error("Expected inner ring not to contain its outer ring")
	}
}
