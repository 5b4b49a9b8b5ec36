// pkg/geojson/decode.go - GeoJSON text to geometry model
package geojson

import (
	"github.com/tidwall/gjson"

	"github.com/valpere/geoconv/pkg/codec"
	"github.com/valpere/geoconv/pkg/geom"
	"github.com/valpere/geoconv/pkg/value"
)

// decodeObject dispatches on the "type" discriminator
func decodeObject(r gjson.Result) (geom.Object, error) {
	typeNode := r.Get(keyType)
	if !typeNode.Exists() {
		return nil, codec.NewDecodeError("GeoJSON object", codec.ErrTypeNotFound)
	}

	typ, ok := geom.ParseType(typeNode.String())
	if !ok || typeNode.Type != gjson.String {
		return nil, codec.NewDecodeError(typeNode.Raw, codec.ErrUnknownType)
	}

	context := string(typ)
	switch typ {
	case geom.TypePoint:
		coords, err := coordinates(context, r)
		if err != nil {
			return nil, err
		}
		return position(context, coords)
	case geom.TypeLineString:
		coords, err := coordinates(context, r)
		if err != nil {
			return nil, err
		}
		return lineString(context, coords)
	case geom.TypeMultiPoint:
		coords, err := coordinates(context, r)
		if err != nil {
			return nil, err
		}
		points, err := positions(context, coords, 0)
		if err != nil {
			return nil, err
		}
		return geom.MultiPoint(points), nil
	case geom.TypeMultiLineString:
		coords, err := coordinates(context, r)
		if err != nil {
			return nil, err
		}
		return multiLineString(context, coords)
	case geom.TypePolygon:
		coords, err := coordinates(context, r)
		if err != nil {
			return nil, err
		}
		return polygon(context, coords)
	case geom.TypeMultiPolygon:
		coords, err := coordinates(context, r)
		if err != nil {
			return nil, err
		}
		return multiPolygon(context, coords)
	case geom.TypeGeometryCollection:
		return geometryCollection(r)
	case geom.TypeFeature:
		return feature(r)
	case geom.TypeFeatureCollection:
		return featureCollection(r)
	}

	return nil, codec.NewDecodeError(context, codec.ErrUnknownType)
}

func coordinates(context string, r gjson.Result) (gjson.Result, error) {
	coords := r.Get(keyCoordinates)
	if !coords.Exists() {
		return gjson.Result{}, codec.NewDecodeError(context, codec.ErrCoordinatesNotFound)
	}
	return coords, nil
}

// position reads [x, y, z?, m?]
func position(context string, r gjson.Result) (geom.Point, error) {
	values, err := codec.Numbers(context, r, 2)
	if err != nil {
		return nil, err
	}
	return geom.Point(values), nil
}

func positions(context string, r gjson.Result, min int) ([]geom.Point, error) {
	items, err := codec.Array(context, r)
	if err != nil {
		return nil, err
	}
	if len(items) < min {
		return nil, codec.NewDecodeError(context, codec.ErrTooShort)
	}

	points := make([]geom.Point, len(items))
	for i, item := range items {
		if points[i], err = position(context, item); err != nil {
			return nil, err
		}
	}
	return points, nil
}

func lineString(context string, r gjson.Result) (geom.LineString, error) {
	points, err := positions(context, r, 2)
	if err != nil {
		return nil, err
	}
	return geom.LineString(points), nil
}

func multiLineString(context string, r gjson.Result) (geom.MultiLineString, error) {
	items, err := codec.Array(context, r)
	if err != nil {
		return nil, err
	}

	lines := make(geom.MultiLineString, len(items))
	for i, item := range items {
		if lines[i], err = lineString(context, item); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

// polygon reads an array of rings; every ring must be a closed linear ring
func polygon(context string, r gjson.Result) (geom.Polygon, error) {
	items, err := codec.Array(context, r)
	if err != nil {
		return nil, err
	}
	if len(items) < 1 {
		return nil, codec.NewDecodeError(context, codec.ErrTooShort)
	}

	rings := make(geom.Polygon, len(items))
	for i, item := range items {
		ring, err := lineString(context, item)
		if err != nil {
			return nil, err
		}
		if !ring.IsLinearRing() {
			return nil, codec.NewDecodeError(context, codec.ErrNotLinearRing)
		}
		rings[i] = ring
	}
	return rings, nil
}

func multiPolygon(context string, r gjson.Result) (geom.MultiPolygon, error) {
	items, err := codec.Array(context, r)
	if err != nil {
		return nil, err
	}

	polygons := make(geom.MultiPolygon, len(items))
	for i, item := range items {
		if polygons[i], err = polygon(context, item); err != nil {
			return nil, err
		}
	}
	return polygons, nil
}

func geometryCollection(r gjson.Result) (geom.GeometryCollection, error) {
	const context = "GeometryCollection"

	members := r.Get(keyGeometries)
	if !members.Exists() {
		return nil, codec.NewDecodeError(context, codec.ErrGeometriesNotFound)
	}
	items, err := codec.Array(context, members)
	if err != nil {
		return nil, err
	}

	collection := make(geom.GeometryCollection, len(items))
	for i, item := range items {
		if collection[i], err = memberGeometry(context, item); err != nil {
			return nil, err
		}
	}
	return collection, nil
}

// memberGeometry decodes a nested object that must be a geometry
func memberGeometry(context string, r gjson.Result) (geom.Geometry, error) {
	if _, err := codec.Object(context, r); err != nil {
		return nil, err
	}

	obj, err := decodeObject(r)
	if err != nil {
		return nil, err
	}

	g, ok := obj.(geom.Geometry)
	if !ok {
		return nil, codec.NewDecodeError(context, codec.ErrNotGeometry)
	}
	return g, nil
}

func feature(r gjson.Result) (*geom.Feature, error) {
	const context = "Feature"

	geometry := r.Get(keyGeometry)
	if !geometry.Exists() {
		return nil, codec.NewDecodeError(context, codec.ErrGeometryNotFound)
	}

	f := &geom.Feature{}
	if !codec.IsEmptyObject(geometry) {
		g, err := memberGeometry(context, geometry)
		if err != nil {
			return nil, err
		}
		f.Geometry = g
	}

	if props := r.Get(keyProperties); props.Exists() && props.Type != gjson.Null {
		if !props.IsObject() {
			return nil, codec.NewDecodeError(context, codec.ErrPropertiesNotObject)
		}
		f.Properties = value.ObjectFromResult(props)
	}

	if id := r.Get(keyID); id.Exists() {
		if text, ok := value.FromResult(id).Text(); ok {
			f.SetID(text)
		}
	}

	return f, nil
}

func featureCollection(r gjson.Result) (geom.FeatureCollection, error) {
	const context = "FeatureCollection"

	members := r.Get(keyFeatures)
	if !members.Exists() {
		return nil, codec.NewDecodeError(context, codec.ErrFeaturesNotFound)
	}
	items, err := codec.Array(context, members)
	if err != nil {
		return nil, err
	}

	collection := make(geom.FeatureCollection, len(items))
	for i, item := range items {
		if _, err := codec.Object(context, item); err != nil {
			return nil, err
		}
		obj, err := decodeObject(item)
		if err != nil {
			return nil, err
		}
		f, ok := obj.(*geom.Feature)
		if !ok {
			return nil, codec.NewDecodeError(context, codec.ErrNotFeature)
		}
		collection[i] = f
	}
	return collection, nil
}
