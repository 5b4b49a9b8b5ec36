// pkg/orbconv/feature.go - Feature conversion to and from orb/geojson
package orbconv

import (
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"github.com/valpere/geoconv/pkg/geom"
	"github.com/valpere/geoconv/pkg/value"
)

// ToFeature converts f into an orb GeoJSON feature. Properties become a
// plain map and the id stays a string.
func ToFeature(f *geom.Feature) (*geojson.Feature, error) {
	var (
		converted = geojson.NewFeature(nil)
		err       error
	)
	if f.HasGeometry() {
		if converted.Geometry, err = ToOrb(f.Geometry); err != nil {
			return nil, err
		}
	}
	if f.Properties != nil {
		converted.Properties = f.Properties.Map()
	}
	if f.ID != nil {
		converted.ID = *f.ID
	}
	return converted, nil
}

// FromFeature converts an orb GeoJSON feature. Properties are stored with
// sorted keys; numeric ids are rendered as text.
func FromFeature(f *geojson.Feature) *geom.Feature {
	converted := geom.NewFeature(nil)
	if f.Geometry != nil {
		converted.Geometry = FromOrb(f.Geometry)
	}
	if f.Properties != nil {
		converted.Properties = value.ObjectFromMap(f.Properties)
	}
	if f.ID != nil {
		if id, ok := value.FromAny(f.ID).Text(); ok {
			converted.SetID(id)
		}
	}
	return converted
}

// ToFeatureCollection converts every feature of fc
func ToFeatureCollection(fc geom.FeatureCollection) (*geojson.FeatureCollection, error) {
	converted := geojson.NewFeatureCollection()
	for i, f := range fc {
		if f == nil {
			continue
		}
		feature, err := ToFeature(f)
		if err != nil {
			return nil, errors.Wrapf(err, "feature %d", i)
		}
		converted.Append(feature)
	}
	return converted, nil
}

// FromFeatureCollection converts every feature of fc
func FromFeatureCollection(fc *geojson.FeatureCollection) geom.FeatureCollection {
	converted := make(geom.FeatureCollection, len(fc.Features))
	for i, f := range fc.Features {
		converted[i] = FromFeature(f)
	}
	return converted
}
