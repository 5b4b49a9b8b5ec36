// pkg/geom/feature.go - GeometryCollection, Feature and FeatureCollection
package geom

import "github.com/valpere/geoconv/pkg/value"

// GeometryCollection holds geometries of any kind, including nested collections
type GeometryCollection []Geometry

// Type implements Object
func (gc GeometryCollection) Type() Type { return TypeGeometryCollection }

// Len returns the number of members
func (gc GeometryCollection) Len() int { return len(gc) }

// IsValid requires every member to be present and valid
func (gc GeometryCollection) IsValid() bool {
	for _, g := range gc {
		if IsNil(g) || !g.IsValid() {
			return false
		}
	}
	return true
}

// IsEquivalentTo implements Object with two-way set containment
func (gc GeometryCollection) IsEquivalentTo(other Object) bool {
	if result, decided := naiveEquals(gc, other); decided {
		return result
	}
	return setEquivalent(gc, other.(GeometryCollection))
}

// Clone returns a deep copy
func (gc GeometryCollection) Clone() GeometryCollection {
	if gc == nil {
		return nil
	}
	c := make(GeometryCollection, len(gc))
	for i, g := range gc {
		if !IsNil(g) {
			c[i] = CloneGeometry(g)
		}
	}
	return c
}

// Feature wraps at most one geometry together with free-form properties and
// an optional identifier
type Feature struct {
	ID         *string
	Geometry   Geometry
	Properties *value.Object
}

// NewFeature creates a feature around g, which may be nil
func NewFeature(g Geometry) *Feature {
	return &Feature{Geometry: g}
}

// Type implements Object
func (f *Feature) Type() Type { return TypeFeature }

// Len returns 1 when the feature holds a geometry and 0 otherwise
func (f *Feature) Len() int {
	if f == nil || IsNil(f.Geometry) {
		return 0
	}
	return 1
}

// HasGeometry reports whether a geometry is attached
func (f *Feature) HasGeometry() bool {
	return f.Len() == 1
}

// SetGeometry replaces the held geometry
func (f *Feature) SetGeometry(g Geometry) {
	f.Geometry = g
}

// SetID sets the identifier
func (f *Feature) SetID(id string) {
	f.ID = &id
}

// Property returns a property value and whether it is set
func (f *Feature) Property(key string) (value.Value, bool) {
	return f.Properties.Get(key)
}

// SetProperty sets a property, creating the property map when needed
func (f *Feature) SetProperty(key string, v value.Value) {
	if f.Properties == nil {
		f.Properties = value.NewObject()
	}
	f.Properties.Set(key, v)
}

// IsValid requires the held geometry, if any, to be valid
func (f *Feature) IsValid() bool {
	if f == nil {
		return false
	}
	return !f.HasGeometry() || f.Geometry.IsValid()
}

// IsEquivalentTo implements Object. Only geometries are compared; properties
// and identifiers are ignored.
func (f *Feature) IsEquivalentTo(other Object) bool {
	if result, decided := naiveEquals(f, other); decided {
		return result
	}
	o := other.(*Feature)
	if !f.HasGeometry() {
		return !o.HasGeometry()
	}
	return o.HasGeometry() && f.Geometry.IsEquivalentTo(o.Geometry)
}

// Clone returns a deep copy
func (f *Feature) Clone() *Feature {
	if f == nil {
		return nil
	}
	c := &Feature{Properties: f.Properties.Clone()}
	if f.ID != nil {
		id := *f.ID
		c.ID = &id
	}
	if f.HasGeometry() {
		c.Geometry = CloneGeometry(f.Geometry)
	}
	return c
}

// FeatureCollection is an unordered set of features
type FeatureCollection []*Feature

// Type implements Object
func (fc FeatureCollection) Type() Type { return TypeFeatureCollection }

// Len returns the number of features
func (fc FeatureCollection) Len() int { return len(fc) }

// IsValid requires every feature to be present and valid
func (fc FeatureCollection) IsValid() bool {
	for _, f := range fc {
		if f == nil || !f.IsValid() {
			return false
		}
	}
	return true
}

// IsEquivalentTo implements Object with two-way set containment
func (fc FeatureCollection) IsEquivalentTo(other Object) bool {
	if result, decided := naiveEquals(fc, other); decided {
		return result
	}
	return setEquivalent(fc, other.(FeatureCollection))
}

// Clone returns a deep copy
func (fc FeatureCollection) Clone() FeatureCollection {
	if fc == nil {
		return nil
	}
	c := make(FeatureCollection, len(fc))
	for i, f := range fc {
		c[i] = f.Clone()
	}
	return c
}
