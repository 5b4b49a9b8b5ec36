// pkg/geom/equivalence_test.go - Unit tests for IsEquivalentTo
package geom

import (
	"testing"

	"github.com/valpere/geoconv/pkg/value"
)

func TestEquivalenceShortCircuit(t *testing.T) {
	var nilPoint Point
	p := Pt(1, 2)

	tests := []struct {
		name string
		a    Object
		b    Object
		want bool
	}{
		{"nil and nil", nilPoint, nilPoint, false},
		{"nil argument", p, nil, false},
		{"nil receiver", nilPoint, p, false},
		{"type mismatch", p, MultiPoint{p}, false},
		{"size mismatch", Pt(1, 2), Pt(1, 2, 3), false},
		{"identity", p, p, true},
		{"structural equality", Pt(1, 2), Pt(1, 2), true},
		{"different point", Pt(1, 2), Pt(2, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsEquivalentTo(tt.b); got != tt.want {
				t.Errorf("IsEquivalentTo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLineStringEquivalence(t *testing.T) {
	line := Line(Pt(0, 0), Pt(1, 1), Pt(2, 0))

	if !line.IsEquivalentTo(line.Reverse()) {
		t.Error("Expected open line to be equivalent to its reverse")
	}
	if line.IsEquivalentTo(Line(Pt(1, 1), Pt(0, 0), Pt(2, 0))) {
		t.Error("Expected reordered open line not to be equivalent")
	}
}

func TestRingEquivalence(t *testing.T) {
	a, b, c, d := Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)
	ring := Line(a, b, c, d, a)

	tests := []struct {
		name  string
		other LineString
		want  bool
	}{
		{"same", Line(a, b, c, d, a), true},
		{"rotated by one", Line(b, c, d, a, b), true},
		{"rotated by two", Line(c, d, a, b, c), true},
		{"rotated by three", Line(d, a, b, c, d), true},
		{"reversed", Line(a, d, c, b, a), true},
		{"reversed and rotated", Line(c, b, a, d, c), true},
		{"permuted out of cyclic order", Line(a, c, b, d, a), false},
		{"not a ring", Line(a, b, c, d), false},
		{"different size", Line(a, b, c, a), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ring.IsEquivalentTo(tt.other); got != tt.want {
				t.Errorf("IsEquivalentTo(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestPolygonEquivalence(t *testing.T) {
	outer := Line(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0), Pt(0, 0))
	hole1 := Ring(Pt(1, 1), Pt(2, 1), Pt(2, 2), Pt(1, 2))
	hole2 := Ring(Pt(5, 5), Pt(6, 5), Pt(6, 6), Pt(5, 6))

	base := Polygon{outer, hole1, hole2}

	rotatedOuter := Line(Pt(10, 10), Pt(10, 0), Pt(0, 0), Pt(0, 10), Pt(10, 10))
	if !base.IsEquivalentTo(Polygon{rotatedOuter, hole2.Reverse(), hole1}) {
		t.Error("Expected rotated outer ring and reordered holes to be equivalent")
	}

	// a hole promoted to outer ring must not match
	if base.IsEquivalentTo(Polygon{hole1, outer, hole2}) {
		t.Error("Expected swapped outer ring not to be equivalent")
	}

	if base.IsEquivalentTo(Polygon{outer, hole1, hole1}) {
		t.Error("Expected different hole sets not to be equivalent")
	}
}

func TestMultiEquivalenceIsPermutationInvariant(t *testing.T) {
	tests := []struct {
		name string
		a    Object
		b    Object
		want bool
	}{
		{
			"multipoint permuted",
			MultiPoint{Pt(0, 0), Pt(1, 1), Pt(2, 2)},
			MultiPoint{Pt(2, 2), Pt(0, 0), Pt(1, 1)},
			true,
		},
		{
			"multipoint duplicates tolerated",
			MultiPoint{Pt(0, 0), Pt(0, 0), Pt(1, 1)},
			MultiPoint{Pt(1, 1), Pt(0, 0), Pt(1, 1)},
			true,
		},
		{
			"multilinestring with reversed member",
			MultiLineString{Line(Pt(0, 0), Pt(1, 1)), Line(Pt(5, 5), Pt(6, 6))},
			MultiLineString{Line(Pt(6, 6), Pt(5, 5)), Line(Pt(0, 0), Pt(1, 1))},
			true,
		},
		{
			"multipolygon permuted",
			MultiPolygon{{square()}, {Ring(Pt(5, 5), Pt(5, 6), Pt(6, 6), Pt(6, 5))}},
			MultiPolygon{{Ring(Pt(6, 6), Pt(6, 5), Pt(5, 5), Pt(5, 6))}, {square().Reverse()}},
			true,
		},
		{
			"collection permuted",
			GeometryCollection{Pt(1, 2), Line(Pt(0, 0), Pt(1, 1))},
			GeometryCollection{Line(Pt(1, 1), Pt(0, 0)), Pt(1, 2)},
			true,
		},
		{
			"collection mismatch",
			GeometryCollection{Pt(1, 2), Pt(3, 4)},
			GeometryCollection{Pt(1, 2), Pt(1, 2)},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsEquivalentTo(tt.b); got != tt.want {
				t.Errorf("IsEquivalentTo() = %v, want %v", got, tt.want)
			}
			if got := tt.b.IsEquivalentTo(tt.a); got != tt.want {
				t.Errorf("reverse IsEquivalentTo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFeatureEquivalenceIgnoresProperties(t *testing.T) {
	a := NewFeature(Line(Pt(0, 0), Pt(1, 1)))
	a.SetProperty("name", value.String("a"))
	b := NewFeature(Line(Pt(1, 1), Pt(0, 0)))
	b.SetProperty("name", value.String("b"))

	if !a.IsEquivalentTo(b) {
		t.Error("Expected features with equivalent geometry to be equivalent")
	}

	if !NewFeature(nil).IsEquivalentTo(NewFeature(nil)) {
		t.Error("Expected two features without geometry to be equivalent")
	}

	if NewFeature(nil).IsEquivalentTo(a) {
		t.Error("Expected feature without geometry not to match one with geometry")
	}

	fc1 := FeatureCollection{a, NewFeature(Pt(1, 2))}
	fc2 := FeatureCollection{NewFeature(Pt(1, 2)), b}
	if !fc1.IsEquivalentTo(fc2) {
		t.Error("Expected permuted feature collections to be equivalent")
	}
}
