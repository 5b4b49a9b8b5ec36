// pkg/geom/point.go - Point and MultiPoint
package geom

import "math"

// Point is a coordinate tuple x, y and optional z and m. A NaN component
// stands for a missing (null) value.
type Point []float64

// Pt builds a point from literal coordinates
func Pt(coords ...float64) Point {
	return append(Point(nil), coords...)
}

// Type implements Object
func (p Point) Type() Type { return TypePoint }

// Len returns the number of components
func (p Point) Len() int { return len(p) }

// Dimension returns the coordinate dimension: 2 for xy, 3 for xyz and 4 for
// xyzm. Extra components beyond m are not counted.
func (p Point) Dimension() int {
	if len(p) > 4 {
		return 4
	}
	return len(p)
}

// X returns the first component
func (p Point) X() float64 { return p[0] }

// Y returns the second component
func (p Point) Y() float64 { return p[1] }

// IsValid requires at least two non-null components
func (p Point) IsValid() bool {
	count := 0
	for _, c := range p {
		if !math.IsNaN(c) {
			count++
		}
	}
	return count >= 2
}

// Equal compares components one by one. Two null (NaN) components are equal.
func (p Point) Equal(other Point) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] && !(math.IsNaN(p[i]) && math.IsNaN(other[i])) {
			return false
		}
	}
	return true
}

// IsEquivalentTo implements Object. Points are equivalent only when equal.
func (p Point) IsEquivalentTo(other Object) bool {
	if result, decided := naiveEquals(p, other); decided {
		return result
	}
	return p.Equal(other.(Point))
}

// Clone returns a copy of the point
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	return append(Point(nil), p...)
}

// MultiPoint is an unordered collection of points
type MultiPoint []Point

// Type implements Object
func (mp MultiPoint) Type() Type { return TypeMultiPoint }

// Len returns the number of points
func (mp MultiPoint) Len() int { return len(mp) }

// IsValid requires every point to be present and valid
func (mp MultiPoint) IsValid() bool {
	for _, p := range mp {
		if p == nil || !p.IsValid() {
			return false
		}
	}
	return true
}

// IsEquivalentTo implements Object with two-way set containment
func (mp MultiPoint) IsEquivalentTo(other Object) bool {
	if result, decided := naiveEquals(mp, other); decided {
		return result
	}
	return setEquivalent(mp, other.(MultiPoint))
}

// Clone returns a deep copy
func (mp MultiPoint) Clone() MultiPoint {
	if mp == nil {
		return nil
	}
	c := make(MultiPoint, len(mp))
	for i, p := range mp {
		c[i] = p.Clone()
	}
	return c
}
