// pkg/orbconv/orbconv.go - Conversion between the geometry model and orb geometries
package orbconv

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/valpere/geoconv/pkg/geom"
)

// ErrShortPoint is returned for points with fewer than two components
var ErrShortPoint = errors.New("point has fewer than two components")

// ToOrb converts g to the matching orb geometry. orb is planar xy only, so z
// and m are dropped. Polygon members become orb rings.
func ToOrb(g geom.Geometry) (orb.Geometry, error) {
	switch t := g.(type) {
	case geom.Point:
		return toOrbPoint(t)
	case geom.MultiPoint:
		points, err := toOrbPoints(t)
		return orb.MultiPoint(points), err
	case geom.LineString:
		points, err := toOrbPoints(t)
		return orb.LineString(points), err
	case geom.MultiLineString:
		result := make(orb.MultiLineString, len(t))
		for i, ls := range t {
			points, err := toOrbPoints(ls)
			if err != nil {
				return nil, err
			}
			result[i] = points
		}
		return result, nil
	case geom.Polygon:
		return toOrbPolygon(t)
	case geom.MultiPolygon:
		result := make(orb.MultiPolygon, len(t))
		for i, p := range t {
			polygon, err := toOrbPolygon(p)
			if err != nil {
				return nil, err
			}
			result[i] = polygon
		}
		return result, nil
	case geom.GeometryCollection:
		result := make(orb.Collection, 0, len(t))
		for _, member := range t {
			if geom.IsNil(member) {
				continue
			}
			converted, err := ToOrb(member)
			if err != nil {
				return nil, err
			}
			result = append(result, converted)
		}
		return result, nil
	case nil:
		return nil, nil
	}
	return nil, errors.Errorf("unsupported geometry type %T", g)
}

func toOrbPoint(p geom.Point) (orb.Point, error) {
	if len(p) < 2 {
		return orb.Point{}, ErrShortPoint
	}
	return orb.Point{p[0], p[1]}, nil
}

func toOrbPoints(points []geom.Point) ([]orb.Point, error) {
	result := make([]orb.Point, len(points))
	for i, p := range points {
		converted, err := toOrbPoint(p)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		result[i] = converted
	}
	return result, nil
}

func toOrbPolygon(p geom.Polygon) (orb.Polygon, error) {
	result := make(orb.Polygon, len(p))
	for i, ring := range p {
		points, err := toOrbPoints(ring)
		if err != nil {
			return nil, errors.Wrapf(err, "ring %d", i)
		}
		result[i] = points
	}
	return result, nil
}

// FromOrb converts an orb geometry into the model. Rings become closed line
// strings and a Bound becomes its polygon.
func FromOrb(g orb.Geometry) geom.Geometry {
	switch t := g.(type) {
	case orb.Point:
		return geom.Pt(t[0], t[1])
	case orb.MultiPoint:
		return geom.MultiPoint(fromOrbPoints(t))
	case orb.LineString:
		return geom.LineString(fromOrbPoints(t))
	case orb.Ring:
		return geom.LineString(fromOrbPoints(t))
	case orb.MultiLineString:
		result := make(geom.MultiLineString, len(t))
		for i, ls := range t {
			result[i] = fromOrbPoints(ls)
		}
		return result
	case orb.Polygon:
		return fromOrbPolygon(t)
	case orb.MultiPolygon:
		result := make(geom.MultiPolygon, len(t))
		for i, p := range t {
			result[i] = fromOrbPolygon(p)
		}
		return result
	case orb.Collection:
		result := make(geom.GeometryCollection, 0, len(t))
		for _, member := range t {
			if converted := FromOrb(member); converted != nil {
				result = append(result, converted)
			}
		}
		return result
	case orb.Bound:
		return fromOrbPolygon(t.ToPolygon())
	}
	return nil
}

func fromOrbPoints(points []orb.Point) []geom.Point {
	result := make([]geom.Point, len(points))
	for i, p := range points {
		result[i] = geom.Pt(p[0], p[1])
	}
	return result
}

func fromOrbPolygon(p orb.Polygon) geom.Polygon {
	result := make(geom.Polygon, len(p))
	for i, ring := range p {
		result[i] = fromOrbPoints(ring)
	}
	return result
}
