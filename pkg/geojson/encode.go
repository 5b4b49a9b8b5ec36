// pkg/geojson/encode.go - Geometry model to GeoJSON text
package geojson

import (
	"github.com/pkg/errors"

	"github.com/valpere/geoconv/pkg/codec"
	"github.com/valpere/geoconv/pkg/geom"
	"github.com/valpere/geoconv/pkg/value"
)

func appendObject(dst []byte, obj geom.Object) ([]byte, error) {
	switch o := obj.(type) {
	case *geom.Feature:
		return appendFeature(dst, o)
	case geom.FeatureCollection:
		return appendFeatureCollection(dst, o)
	case geom.Geometry:
		return appendGeometry(dst, o)
	}
	return nil, errors.Wrapf(codec.ErrUnsupportedType, "%T", obj)
}

func appendTypeTag(dst []byte, t geom.Type) []byte {
	dst = append(dst, `{"type":`...)
	return value.AppendString(dst, string(t))
}

func appendGeometry(dst []byte, g geom.Geometry) ([]byte, error) {
	if geom.IsNil(g) {
		return nil, codec.ErrNilObject
	}

	dst = appendTypeTag(dst, g.Type())
	if gc, ok := g.(geom.GeometryCollection); ok {
		dst = append(dst, `,"geometries":[`...)
		for i, member := range gc {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			if dst, err = appendGeometry(dst, member); err != nil {
				return nil, errors.Wrapf(err, "geometries[%d]", i)
			}
		}
		return append(dst, "]}"...), nil
	}

	dst = append(dst, `,"coordinates":`...)
	dst = appendCoordinates(dst, g)
	return append(dst, '}'), nil
}

func appendCoordinates(dst []byte, g geom.Geometry) []byte {
	switch t := g.(type) {
	case geom.Point:
		return appendPosition(dst, t)
	case geom.MultiPoint:
		return appendPositions(dst, t)
	case geom.LineString:
		return appendPositions(dst, t)
	case geom.MultiLineString:
		return appendLines(dst, t)
	case geom.Polygon:
		return appendLines(dst, t)
	case geom.MultiPolygon:
		dst = append(dst, '[')
		for i, p := range t {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendLines(dst, p)
		}
		return append(dst, ']')
	}
	return append(dst, "[]"...)
}

func appendPosition(dst []byte, p geom.Point) []byte {
	dst = append(dst, '[')
	for i, c := range p {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = value.AppendFloat(dst, c)
	}
	return append(dst, ']')
}

func appendPositions(dst []byte, points []geom.Point) []byte {
	dst = append(dst, '[')
	for i, p := range points {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendPosition(dst, p)
	}
	return append(dst, ']')
}

func appendLines[L ~[]geom.LineString](dst []byte, lines L) []byte {
	dst = append(dst, '[')
	for i, ls := range lines {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendPositions(dst, ls)
	}
	return append(dst, ']')
}

// appendFeature writes an absent geometry as {} and omits absent properties
func appendFeature(dst []byte, f *geom.Feature) ([]byte, error) {
	dst = appendTypeTag(dst, geom.TypeFeature)
	if f.ID != nil {
		dst = append(dst, `,"id":`...)
		dst = value.AppendString(dst, *f.ID)
	}

	dst = append(dst, `,"geometry":`...)
	if f.HasGeometry() {
		var err error
		if dst, err = appendGeometry(dst, f.Geometry); err != nil {
			return nil, err
		}
	} else {
		dst = append(dst, "{}"...)
	}

	if f.Properties != nil {
		dst = append(dst, `,"properties":`...)
		dst = f.Properties.AppendJSON(dst)
	}
	return append(dst, '}'), nil
}

func appendFeatureCollection(dst []byte, fc geom.FeatureCollection) ([]byte, error) {
	dst = appendTypeTag(dst, geom.TypeFeatureCollection)
	dst = append(dst, `,"features":[`...)
	for i, f := range fc {
		if f == nil {
			return nil, errors.Wrapf(codec.ErrNilObject, "features[%d]", i)
		}
		if i > 0 {
			dst = append(dst, ',')
		}
		var err error
		if dst, err = appendFeature(dst, f); err != nil {
			return nil, errors.Wrapf(err, "features[%d]", i)
		}
	}
	return append(dst, "]}"...), nil
}
