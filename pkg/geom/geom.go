// pkg/geom/geom.go - Geometry model: type tags and the Object/Geometry sum type
package geom

// Type is the closed set of tags carried by every model value
type Type string

// Type tags as they appear in the GeoJSON "type" discriminator
const (
	TypePoint              Type = "Point"
	TypeMultiPoint         Type = "MultiPoint"
	TypeLineString         Type = "LineString"
	TypeMultiLineString    Type = "MultiLineString"
	TypePolygon            Type = "Polygon"
	TypeMultiPolygon       Type = "MultiPolygon"
	TypeGeometryCollection Type = "GeometryCollection"
	TypeFeature            Type = "Feature"
	TypeFeatureCollection  Type = "FeatureCollection"
)

// String returns the tag name
func (t Type) String() string {
	return string(t)
}

// IsGeometry reports whether the tag names one of the seven geometry kinds
func (t Type) IsGeometry() bool {
	switch t {
	case TypePoint, TypeMultiPoint, TypeLineString, TypeMultiLineString,
		TypePolygon, TypeMultiPolygon, TypeGeometryCollection:
		return true
	}
	return false
}

// ParseType maps a discriminator string onto a known tag
func ParseType(s string) (Type, bool) {
	t := Type(s)
	if t.IsGeometry() || t == TypeFeature || t == TypeFeatureCollection {
		return t, true
	}
	return "", false
}

// Object is implemented by every model value, geometries and features alike.
type Object interface {
	// Type returns the value's tag
	Type() Type
	// Len returns the number of direct children (components for a Point)
	Len() int
	// IsValid checks structural validity; coordinate ranges are never inspected
	IsValid() bool
	// IsEquivalentTo compares geometric sameness up to member permutation and
	// ring rotation/reversal
	IsEquivalentTo(other Object) bool
}

// Geometry is the sum of the seven geometry kinds. The unexported marker
// keeps the set closed to this package.
type Geometry interface {
	Object
	geometry()
}

func (Point) geometry()              {}
func (MultiPoint) geometry()         {}
func (LineString) geometry()         {}
func (MultiLineString) geometry()    {}
func (Polygon) geometry()            {}
func (MultiPolygon) geometry()       {}
func (GeometryCollection) geometry() {}

// IsNil reports whether o is absent: a nil interface, a nil slice-backed
// geometry or a nil *Feature.
func IsNil(o Object) bool {
	switch t := o.(type) {
	case nil:
		return true
	case Point:
		return t == nil
	case MultiPoint:
		return t == nil
	case LineString:
		return t == nil
	case MultiLineString:
		return t == nil
	case Polygon:
		return t == nil
	case MultiPolygon:
		return t == nil
	case GeometryCollection:
		return t == nil
	case *Feature:
		return t == nil
	case FeatureCollection:
		return t == nil
	}
	return false
}

// Clone returns a deep copy of any model value
func Clone(o Object) Object {
	switch t := o.(type) {
	case Geometry:
		return CloneGeometry(t)
	case *Feature:
		return t.Clone()
	case FeatureCollection:
		return t.Clone()
	}
	return o
}

// CloneGeometry returns a deep copy of a geometry
func CloneGeometry(g Geometry) Geometry {
	switch t := g.(type) {
	case Point:
		return t.Clone()
	case MultiPoint:
		return t.Clone()
	case LineString:
		return t.Clone()
	case MultiLineString:
		return t.Clone()
	case Polygon:
		return t.Clone()
	case MultiPolygon:
		return t.Clone()
	case GeometryCollection:
		return t.Clone()
	}
	return g
}
