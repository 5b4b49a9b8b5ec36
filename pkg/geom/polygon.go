// pkg/geom/polygon.go - Polygon and MultiPolygon
package geom

// Polygon is an outer ring at index 0 followed by zero or more holes
type Polygon []LineString

// Type implements Object
func (p Polygon) Type() Type { return TypePolygon }

// Len returns the number of rings
func (p Polygon) Len() int { return len(p) }

// Outer returns the outer ring or nil for an empty polygon
func (p Polygon) Outer() LineString {
	if len(p) == 0 {
		return nil
	}
	return p[0]
}

// Holes returns the rings after the outer ring
func (p Polygon) Holes() []LineString {
	if len(p) < 2 {
		return nil
	}
	return p[1:]
}

// IsValid requires at least one ring and every ring to be a present, valid
// linear ring
func (p Polygon) IsValid() bool {
	if len(p) == 0 {
		return false
	}
	for _, ring := range p {
		if ring == nil || !ring.IsValid() || !ring.IsLinearRing() {
			return false
		}
	}
	return true
}

// Equal compares rings in order
func (p Polygon) Equal(other Polygon) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !p[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// IsEquivalentTo implements Object. Outer rings must be ring-equivalent;
// holes only need to match as a set.
func (p Polygon) IsEquivalentTo(other Object) bool {
	if result, decided := naiveEquals(p, other); decided {
		return result
	}
	o := other.(Polygon)
	if !p[0].IsEquivalentTo(o[0]) {
		return false
	}
	return setEquivalent(p.Holes(), o.Holes())
}

// Clone returns a deep copy
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	c := make(Polygon, len(p))
	for i, ring := range p {
		c[i] = ring.Clone()
	}
	return c
}

// MultiPolygon is an unordered collection of polygons
type MultiPolygon []Polygon

// Type implements Object
func (mp MultiPolygon) Type() Type { return TypeMultiPolygon }

// Len returns the number of polygons
func (mp MultiPolygon) Len() int { return len(mp) }

// IsValid requires every polygon to be present and valid
func (mp MultiPolygon) IsValid() bool {
	for _, p := range mp {
		if p == nil || !p.IsValid() {
			return false
		}
	}
	return true
}

// IsEquivalentTo implements Object with two-way set containment
func (mp MultiPolygon) IsEquivalentTo(other Object) bool {
	if result, decided := naiveEquals(mp, other); decided {
		return result
	}
	return setEquivalent(mp, other.(MultiPolygon))
}

// Clone returns a deep copy
func (mp MultiPolygon) Clone() MultiPolygon {
	if mp == nil {
		return nil
	}
	c := make(MultiPolygon, len(mp))
	for i, p := range mp {
		c[i] = p.Clone()
	}
	return c
}
