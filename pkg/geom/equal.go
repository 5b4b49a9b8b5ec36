// pkg/geom/equal.go - Structural equality and the shared equivalence short-circuit
package geom

// Equal reports structural equality: same type, same members in the same
// order, same components. Features also compare ids and properties.
func Equal(a, b Object) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case Point:
		return x.Equal(b.(Point))
	case LineString:
		return x.Equal(b.(LineString))
	case Polygon:
		return x.Equal(b.(Polygon))
	case MultiPoint:
		return equalSlices(x, b.(MultiPoint))
	case MultiLineString:
		return equalSlices(x, b.(MultiLineString))
	case MultiPolygon:
		return equalSlices(x, b.(MultiPolygon))
	case GeometryCollection:
		return equalSlices(x, b.(GeometryCollection))
	case FeatureCollection:
		return equalSlices(x, b.(FeatureCollection))
	case *Feature:
		y := b.(*Feature)
		if (x.ID == nil) != (y.ID == nil) || x.ID != nil && *x.ID != *y.ID {
			return false
		}
		if !x.Properties.Equal(y.Properties) {
			return false
		}
		return Equal(x.Geometry, y.Geometry)
	}
	return false
}

func equalSlices[T Object](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// naiveEquals runs the cheap checks shared by every IsEquivalentTo. decided
// is false when a deep, type-specific comparison is still needed.
func naiveEquals(a, b Object) (result, decided bool) {
	if IsNil(a) || IsNil(b) {
		return false, true
	}
	if a.Type() != b.Type() {
		return false, true
	}
	if a.Len() != b.Len() {
		return false, true
	}
	if sameInstance(a, b) {
		return true, true
	}
	if Equal(a, b) {
		return true, true
	}
	return false, false
}

// sameInstance reports whether a and b share the same backing storage
func sameInstance(a, b Object) bool {
	if a.Len() == 0 {
		if f, ok := a.(*Feature); ok {
			return f == b.(*Feature)
		}
		return false
	}
	switch x := a.(type) {
	case Point:
		return &x[0] == &b.(Point)[0]
	case MultiPoint:
		return &x[0] == &b.(MultiPoint)[0]
	case LineString:
		return &x[0] == &b.(LineString)[0]
	case MultiLineString:
		return &x[0] == &b.(MultiLineString)[0]
	case Polygon:
		return &x[0] == &b.(Polygon)[0]
	case MultiPolygon:
		return &x[0] == &b.(MultiPolygon)[0]
	case GeometryCollection:
		return &x[0] == &b.(GeometryCollection)[0]
	case FeatureCollection:
		return &x[0] == &b.(FeatureCollection)[0]
	case *Feature:
		return x == b.(*Feature)
	}
	return false
}

// setEquivalent checks that every element of a matches some element of b and
// the other way round. Duplicates are tolerated.
func setEquivalent[T Object](a, b []T) bool {
	return containsAll(a, b) && containsAll(b, a)
}

func containsAll[T Object](a, b []T) bool {
	for _, x := range a {
		if !containsEquivalent(b, x) {
			return false
		}
	}
	return true
}

func containsEquivalent[T Object](items []T, x T) bool {
	if IsNil(x) {
		return false
	}
	for _, y := range items {
		if x.IsEquivalentTo(y) {
			return true
		}
	}
	return false
}
