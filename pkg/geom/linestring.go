// pkg/geom/linestring.go - LineString and MultiLineString
package geom

// LineString is an open or closed path of points
type LineString []Point

// Line builds a line string from points
func Line(points ...Point) LineString {
	return append(LineString(nil), points...)
}

// Ring builds a line string and closes it when the last point differs from the first
func Ring(points ...Point) LineString {
	return Line(points...).Close()
}

// Type implements Object
func (ls LineString) Type() Type { return TypeLineString }

// Len returns the number of points
func (ls LineString) Len() int { return len(ls) }

// IsValid requires at least two points, all present and valid
func (ls LineString) IsValid() bool {
	if len(ls) < 2 {
		return false
	}
	for _, p := range ls {
		if p == nil || !p.IsValid() {
			return false
		}
	}
	return true
}

// IsLinearRing reports whether ls has more than three points and its first
// and last points are equal
func (ls LineString) IsLinearRing() bool {
	return len(ls) > 3 && ls[0].Equal(ls[len(ls)-1])
}

// Equal compares points in order
func (ls LineString) Equal(other LineString) bool {
	if len(ls) != len(other) {
		return false
	}
	for i := range ls {
		if !ls[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Reverse returns a copy with the point order reversed
func (ls LineString) Reverse() LineString {
	if ls == nil {
		return nil
	}
	r := make(LineString, len(ls))
	for i, p := range ls {
		r[len(ls)-1-i] = p
	}
	return r
}

// Close returns ls with the first point appended when it is not already
// closed. Empty line strings are returned unchanged.
func (ls LineString) Close() LineString {
	if len(ls) == 0 || (len(ls) > 1 && ls[0].Equal(ls[len(ls)-1])) {
		return ls
	}
	closed := make(LineString, len(ls), len(ls)+1)
	copy(closed, ls)
	return append(closed, ls[0].Clone())
}

// IsEquivalentTo implements Object. Rings match under any rotation or
// reversal; open paths match themselves or their reverse.
func (ls LineString) IsEquivalentTo(other Object) bool {
	if result, decided := naiveEquals(ls, other); decided {
		return result
	}
	o := other.(LineString)
	if ls.IsLinearRing() || o.IsLinearRing() {
		return ringEquivalent(ls, o)
	}
	return ls.Equal(o) || ls.Equal(o.Reverse())
}

// ringEquivalent tries every rotation of the candidate and of its reverse
// against the reference, with the wrap point removed from both.
func ringEquivalent(ref, cand LineString) bool {
	if ref.IsLinearRing() != cand.IsLinearRing() || len(ref) != len(cand) {
		return false
	}
	a := ref[:len(ref)-1]
	b := cand[:len(cand)-1]
	rev := b.Reverse()
	for offset := 0; offset < len(b); offset++ {
		if rotatedEqual(a, b, offset) || rotatedEqual(a, rev, offset) {
			return true
		}
	}
	return false
}

func rotatedEqual(ref, cand LineString, offset int) bool {
	n := len(cand)
	for i := range ref {
		if !ref[i].Equal(cand[(i+offset)%n]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy
func (ls LineString) Clone() LineString {
	if ls == nil {
		return nil
	}
	c := make(LineString, len(ls))
	for i, p := range ls {
		c[i] = p.Clone()
	}
	return c
}

// MultiLineString is an unordered collection of line strings
type MultiLineString []LineString

// Type implements Object
func (ml MultiLineString) Type() Type { return TypeMultiLineString }

// Len returns the number of line strings
func (ml MultiLineString) Len() int { return len(ml) }

// IsValid requires every member to be present and valid
func (ml MultiLineString) IsValid() bool {
	for _, ls := range ml {
		if ls == nil || !ls.IsValid() {
			return false
		}
	}
	return true
}

// IsEquivalentTo implements Object with two-way set containment
func (ml MultiLineString) IsEquivalentTo(other Object) bool {
	if result, decided := naiveEquals(ml, other); decided {
		return result
	}
	return setEquivalent(ml, other.(MultiLineString))
}

// Clone returns a deep copy
func (ml MultiLineString) Clone() MultiLineString {
	if ml == nil {
		return nil
	}
	c := make(MultiLineString, len(ml))
	for i, ls := range ml {
		c[i] = ls.Clone()
	}
	return c
}
