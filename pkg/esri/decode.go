// pkg/esri/decode.go - Esri JSON text to geometry model
package esri

import (
	"github.com/tidwall/gjson"

	"github.com/valpere/geoconv/pkg/codec"
	"github.com/valpere/geoconv/pkg/geom"
	"github.com/valpere/geoconv/pkg/value"
)

// family is the kind of Esri object recognized from its marker keys
type family int

const (
	familyNone family = iota
	familyPoint
	familyMultiPoint
	familyPolyline
	familyPolygon
	familyFeature
	familyFeatureSet
)

// detect inspects marker keys in a fixed order
func detect(r gjson.Result) family {
	switch {
	case r.Get(keyX).Exists() && r.Get(keyY).Exists():
		return familyPoint
	case r.Get(keyPoints).Exists():
		return familyMultiPoint
	case r.Get(keyPaths).Exists():
		return familyPolyline
	case r.Get(keyRings).Exists():
		return familyPolygon
	case r.Get(keyGeometry).Exists() || r.Get(keyAttributes).Exists():
		return familyFeature
	case r.Get(keyFeatures).Exists():
		return familyFeatureSet
	}
	return familyNone
}

func familyOf(t geom.Type) family {
	switch t {
	case geom.TypePoint:
		return familyPoint
	case geom.TypeMultiPoint:
		return familyMultiPoint
	case geom.TypeLineString, geom.TypeMultiLineString:
		return familyPolyline
	case geom.TypePolygon, geom.TypeMultiPolygon:
		return familyPolygon
	case geom.TypeFeature:
		return familyFeature
	case geom.TypeFeatureCollection:
		return familyFeatureSet
	}
	return familyNone
}

// dims holds the hasZ/hasM flags in effect for a coordinate array
type dims struct {
	hasZ bool
	hasM bool
}

// readDims takes flags from r, falling back to the enclosing object's flags
func readDims(r gjson.Result, inherited dims) dims {
	d := inherited
	if z := r.Get(keyHasZ); z.Exists() {
		d.hasZ = z.Bool()
	}
	if m := r.Get(keyHasM); m.Exists() {
		d.hasM = m.Bool()
	}
	return d
}

// count is the number of components stored per wire position
func (d dims) count() int {
	n := 2
	if d.hasZ {
		n++
	}
	if d.hasM {
		n++
	}
	return n
}

// point reads one [x, y, z?, m?] array. Components beyond the flags are
// dropped; m without z gets a zero z.
func (d dims) point(context string, r gjson.Result) (geom.Point, error) {
	n := d.count()
	values, err := codec.Numbers(context, r, n)
	if err != nil {
		return nil, err
	}
	p := geom.Point(values[:n])
	if d.hasM && !d.hasZ {
		p = geom.Pt(values[0], values[1], 0, values[2])
	}
	if !p.IsValid() {
		return nil, codec.NewDecodeError(context, codec.ErrNotNumber)
	}
	return p, nil
}

func (d dims) points(context string, r gjson.Result) ([]geom.Point, error) {
	items, err := codec.Array(context, r)
	if err != nil {
		return nil, err
	}

	points := make([]geom.Point, len(items))
	for i, item := range items {
		if points[i], err = d.point(context, item); err != nil {
			return nil, err
		}
	}
	return points, nil
}

func (c *Codec) decodeObject(r gjson.Result, inherited dims) (geom.Object, error) {
	d := readDims(r, inherited)

	switch detect(r) {
	case familyPoint:
		return decodePoint(r)
	case familyMultiPoint:
		points, err := d.points("MultiPoint", r.Get(keyPoints))
		if err != nil {
			return nil, err
		}
		return geom.MultiPoint(points), nil
	case familyPolyline:
		return d.polyline(r.Get(keyPaths))
	case familyPolygon:
		return d.polygon(r.Get(keyRings))
	case familyFeature:
		return c.feature(r, d)
	case familyFeatureSet:
		return c.featureSet(r, d)
	}

	return nil, codec.NewDecodeError("Esri object", codec.ErrTypeNotFound)
}

// decodePoint reads a bare {x, y, z?, m?} point. Presence of z and m decides
// the dimension, not the hasZ/hasM flags. A null component reads as NaN.
func decodePoint(r gjson.Result) (geom.Point, error) {
	const context = "Point"

	x, err := codec.NumberOrNull(context, r.Get(keyX))
	if err != nil {
		return nil, err
	}
	y, err := codec.NumberOrNull(context, r.Get(keyY))
	if err != nil {
		return nil, err
	}
	p := geom.Pt(x, y)

	z, m := r.Get(keyZ), r.Get(keyM)
	if z.Exists() {
		zv, err := codec.NumberOrNull(context, z)
		if err != nil {
			return nil, err
		}
		p = append(p, zv)
	}
	if m.Exists() {
		mv, err := codec.NumberOrNull(context, m)
		if err != nil {
			return nil, err
		}
		if !z.Exists() {
			p = append(p, 0)
		}
		p = append(p, mv)
	}
	if !p.IsValid() {
		return nil, codec.NewDecodeError(context, codec.ErrNotNumber)
	}
	return p, nil
}

// polyline collapses a single path into a LineString
func (d dims) polyline(r gjson.Result) (geom.Geometry, error) {
	const context = "Polyline"

	items, err := codec.Array(context, r)
	if err != nil {
		return nil, err
	}

	lines := make(geom.MultiLineString, len(items))
	for i, item := range items {
		points, err := d.points(context, item)
		if err != nil {
			return nil, err
		}
		if len(points) < 2 {
			return nil, codec.NewDecodeError(context, codec.ErrTooShort)
		}
		lines[i] = geom.LineString(points)
	}

	if len(lines) == 1 {
		return lines[0], nil
	}
	return lines, nil
}

func (d dims) polygon(r gjson.Result) (geom.Geometry, error) {
	const context = "Polygon"

	items, err := codec.Array(context, r)
	if err != nil {
		return nil, err
	}

	rings := make([]geom.LineString, len(items))
	for i, item := range items {
		points, err := d.points(context, item)
		if err != nil {
			return nil, err
		}
		rings[i] = geom.LineString(points)
	}
	return Reconstruct(rings), nil
}

// feature decodes {geometry, attributes}. A missing, null or empty geometry
// leaves the feature without one.
func (c *Codec) feature(r gjson.Result, d dims) (*geom.Feature, error) {
	const context = "Feature"

	f := &geom.Feature{}
	if geometry := r.Get(keyGeometry); !codec.IsEmptyObject(geometry) {
		if _, err := codec.Object(context, geometry); err != nil {
			return nil, err
		}
		obj, err := c.decodeObject(geometry, d)
		if err != nil {
			return nil, err
		}
		g, ok := obj.(geom.Geometry)
		if !ok {
			return nil, codec.NewDecodeError(context, codec.ErrNotGeometry)
		}
		f.Geometry = g
	}

	if attrs := r.Get(keyAttributes); attrs.Exists() && attrs.Type != gjson.Null {
		if !attrs.IsObject() {
			return nil, codec.NewDecodeError(context, codec.ErrAttributesNotObject)
		}
		f.Properties = value.ObjectFromResult(attrs)
		if id, ok := f.Properties.Get(c.options.FeatureIDKey); ok {
			if text, ok := id.Text(); ok {
				f.SetID(text)
			}
		}
	}

	return f, nil
}

// featureSet decodes an ArcGIS FeatureSet; set-level hasZ/hasM apply to the
// member geometries unless they carry their own flags
func (c *Codec) featureSet(r gjson.Result, d dims) (geom.FeatureCollection, error) {
	const context = "FeatureSet"

	items, err := codec.Array(context, r.Get(keyFeatures))
	if err != nil {
		return nil, err
	}

	collection := make(geom.FeatureCollection, len(items))
	for i, item := range items {
		if _, err := codec.Object(context, item); err != nil {
			return nil, err
		}
		if detect(item) != familyFeature {
			return nil, codec.NewDecodeError(context, codec.ErrNotFeature)
		}
		if collection[i], err = c.feature(item, d); err != nil {
			return nil, err
		}
	}
	return collection, nil
}
