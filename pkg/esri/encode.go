// pkg/esri/encode.go - Geometry model to Esri JSON text
package esri

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/valpere/geoconv/pkg/codec"
	"github.com/valpere/geoconv/pkg/geom"
	"github.com/valpere/geoconv/pkg/value"
)

func (c *Codec) appendObject(dst []byte, obj geom.Object) ([]byte, error) {
	switch o := obj.(type) {
	case *geom.Feature:
		return c.appendFeature(dst, o)
	case geom.FeatureCollection:
		return c.appendFeatureSet(dst, o)
	case geom.Geometry:
		return c.appendGeometry(dst, o)
	}
	return nil, errors.Wrapf(codec.ErrUnsupportedType, "%T", obj)
}

func (c *Codec) appendGeometry(dst []byte, g geom.Geometry) ([]byte, error) {
	if geom.IsNil(g) {
		return nil, codec.ErrNilObject
	}

	switch t := g.(type) {
	case geom.Point:
		dst = appendPoint(dst, t)
	case geom.MultiPoint:
		d := dimsOf(g)
		dst = d.appendFlags(append(dst, '{'))
		dst = append(dst, `"points":`...)
		dst = d.appendPositions(dst, t)
	case geom.LineString:
		d := dimsOf(g)
		dst = d.appendFlags(append(dst, '{'))
		dst = append(dst, `"paths":[`...)
		dst = d.appendPositions(dst, t)
		dst = append(dst, ']')
	case geom.MultiLineString:
		d := dimsOf(g)
		dst = d.appendFlags(append(dst, '{'))
		dst = append(dst, `"paths":`...)
		dst = d.appendLines(dst, t)
	case geom.Polygon:
		rings, err := orientPolygon(t)
		if err != nil {
			return nil, err
		}
		d := dimsOf(g)
		dst = d.appendFlags(append(dst, '{'))
		dst = append(dst, `"rings":`...)
		dst = d.appendLines(dst, rings)
	case geom.MultiPolygon:
		var rings []geom.LineString
		for i, p := range t {
			oriented, err := orientPolygon(p)
			if err != nil {
				return nil, errors.Wrapf(err, "polygon %d", i)
			}
			rings = append(rings, oriented...)
		}
		d := dimsOf(g)
		dst = d.appendFlags(append(dst, '{'))
		dst = append(dst, `"rings":`...)
		dst = d.appendLines(dst, rings)
	default:
		return nil, errors.Wrapf(codec.ErrUnsupportedType, "%s", g.Type())
	}

	return c.appendSpatialReference(dst), nil
}

// appendSpatialReference closes the geometry object opened by the caller
func (c *Codec) appendSpatialReference(dst []byte) []byte {
	if sr := c.options.SpatialReference; sr != "" {
		dst = append(dst, `,"spatialReference":`...)
		dst = append(dst, sr...)
	}
	return append(dst, '}')
}

// appendPoint writes {"x":..,"y":..[,"z":..][,"m":..] without the closing brace
func appendPoint(dst []byte, p geom.Point) []byte {
	dst = append(dst, `{"x":`...)
	dst = value.AppendFloat(dst, component(p, 0))
	dst = append(dst, `,"y":`...)
	dst = value.AppendFloat(dst, component(p, 1))
	if len(p) >= 3 {
		dst = append(dst, `,"z":`...)
		dst = value.AppendFloat(dst, p[2])
	}
	if len(p) >= 4 {
		dst = append(dst, `,"m":`...)
		dst = value.AppendFloat(dst, p[3])
	}
	return dst
}

func component(p geom.Point, i int) float64 {
	if i < len(p) {
		return p[i]
	}
	return 0
}

// dimsOf derives the flags from the first point found in g
func dimsOf(g geom.Geometry) dims {
	first := firstPoint(g)
	return dims{
		hasZ: len(first) >= 3,
		hasM: len(first) >= 4,
	}
}

func firstPoint(g geom.Geometry) geom.Point {
	switch t := g.(type) {
	case geom.Point:
		return t
	case geom.MultiPoint:
		for _, p := range t {
			if len(p) > 0 {
				return p
			}
		}
	case geom.LineString:
		return firstPoint(geom.MultiPoint(t))
	case geom.MultiLineString:
		for _, ls := range t {
			if p := firstPoint(ls); p != nil {
				return p
			}
		}
	case geom.Polygon:
		return firstPoint(geom.MultiLineString(t))
	case geom.MultiPolygon:
		for _, p := range t {
			if first := firstPoint(p); first != nil {
				return first
			}
		}
	}
	return nil
}

// appendFlags writes "hasZ":true,"hasM":true, as needed, each followed by a
// comma
func (d dims) appendFlags(dst []byte) []byte {
	if d.hasZ {
		dst = append(dst, `"hasZ":true,`...)
	}
	if d.hasM {
		dst = append(dst, `"hasM":true,`...)
	}
	return dst
}

// appendPosition writes exactly d.count() components, padding with zeros
func (d dims) appendPosition(dst []byte, p geom.Point) []byte {
	dst = append(dst, '[')
	for i := 0; i < d.count(); i++ {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = value.AppendFloat(dst, component(p, i))
	}
	return append(dst, ']')
}

func (d dims) appendPositions(dst []byte, points []geom.Point) []byte {
	dst = append(dst, '[')
	for i, p := range points {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = d.appendPosition(dst, p)
	}
	return append(dst, ']')
}

func (d dims) appendLines(dst []byte, lines []geom.LineString) []byte {
	dst = append(dst, '[')
	for i, ls := range lines {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = d.appendPositions(dst, ls)
	}
	return append(dst, ']')
}

// appendFeature writes {"geometry":..,"attributes":..}. An absent geometry is
// written as null. A feature id missing from the attributes is added under
// the configured key.
func (c *Codec) appendFeature(dst []byte, f *geom.Feature) ([]byte, error) {
	dst = append(dst, `{"geometry":`...)
	if f.HasGeometry() {
		var err error
		if dst, err = c.appendGeometry(dst, f.Geometry); err != nil {
			return nil, err
		}
	} else {
		dst = append(dst, "null"...)
	}

	if attrs := c.attributes(f); attrs != nil {
		dst = append(dst, `,"attributes":`...)
		dst = attrs.AppendJSON(dst)
	}
	return append(dst, '}'), nil
}

// attributes returns the properties to write, adding the id when the
// properties do not carry it. f is never modified.
func (c *Codec) attributes(f *geom.Feature) *value.Object {
	if f.ID == nil || f.Properties.Has(c.options.FeatureIDKey) {
		return f.Properties
	}

	attrs := f.Properties.Clone()
	if attrs == nil {
		attrs = value.NewObject()
	}
	attrs.Set(c.options.FeatureIDKey, idValue(*f.ID))
	return attrs
}

// idValue keeps numeric ids numeric, the usual form of OBJECTID
func idValue(id string) value.Value {
	if r := gjson.Parse(id); r.Type == gjson.Number && r.Raw == id {
		return value.FromResult(r)
	}
	return value.String(id)
}

func (c *Codec) appendFeatureSet(dst []byte, fc geom.FeatureCollection) ([]byte, error) {
	dst = append(dst, `{"features":[`...)
	for i, f := range fc {
		if f == nil {
			return nil, errors.Wrapf(codec.ErrNilObject, "features[%d]", i)
		}
		if i > 0 {
			dst = append(dst, ',')
		}
		var err error
		if dst, err = c.appendFeature(dst, f); err != nil {
			return nil, errors.Wrapf(err, "features[%d]", i)
		}
	}
	return append(dst, "]}"...), nil
}
