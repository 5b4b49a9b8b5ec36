// pkg/orbconv/summary.go - Descriptive statistics for decoded objects
package orbconv

import (
	"github.com/paulmach/orb"
	orbplanar "github.com/paulmach/orb/planar"

	"github.com/valpere/geoconv/pkg/geom"
)

// Summary describes a decoded object
type Summary struct {
	Type       geom.Type         `json:"type"`
	Valid      bool              `json:"valid"`
	Features   int               `json:"features"`
	Geometries map[geom.Type]int `json:"geometries"`
	Points     int               `json:"points"`
	Dimension  int               `json:"dimension"`
	Bound      *orb.Bound        `json:"bound,omitempty"`
	Area       float64           `json:"area"`
	Length     float64           `json:"length"`
}

// Summarize walks obj and collects counts, the xy bounding box, planar area
// of polygons and planar length of paths
func Summarize(obj geom.Object) (*Summary, error) {
	s := &Summary{
		Type:       obj.Type(),
		Valid:      obj.IsValid(),
		Geometries: make(map[geom.Type]int),
	}

	switch t := obj.(type) {
	case geom.FeatureCollection:
		for _, f := range t {
			if err := s.addFeature(f); err != nil {
				return nil, err
			}
		}
	case *geom.Feature:
		if err := s.addFeature(t); err != nil {
			return nil, err
		}
	case geom.Geometry:
		if err := s.addGeometry(t); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Summary) addFeature(f *geom.Feature) error {
	if f == nil {
		return nil
	}
	s.Features++
	if !f.HasGeometry() {
		return nil
	}
	return s.addGeometry(f.Geometry)
}

func (s *Summary) addGeometry(g geom.Geometry) error {
	if geom.IsNil(g) {
		return nil
	}
	s.Geometries[g.Type()]++

	if gc, ok := g.(geom.GeometryCollection); ok {
		for _, member := range gc {
			if err := s.addGeometry(member); err != nil {
				return err
			}
		}
		return nil
	}

	s.countPoints(g)

	converted, err := ToOrb(g)
	if err != nil {
		return err
	}
	if b := converted.Bound(); !b.IsEmpty() {
		s.extend(b)
	}

	switch converted.(type) {
	case orb.Polygon, orb.MultiPolygon:
		s.Area += orbplanar.Area(converted)
	case orb.LineString, orb.MultiLineString:
		s.Length += orbplanar.Length(converted)
	}
	return nil
}

func (s *Summary) extend(b orb.Bound) {
	if s.Bound == nil {
		s.Bound = &b
		return
	}
	union := s.Bound.Union(b)
	s.Bound = &union
}

func (s *Summary) countPoints(g geom.Geometry) {
	visit := func(p geom.Point) {
		s.Points++
		if d := p.Dimension(); d > s.Dimension {
			s.Dimension = d
		}
	}

	switch t := g.(type) {
	case geom.Point:
		visit(t)
	case geom.MultiPoint:
		for _, p := range t {
			visit(p)
		}
	case geom.LineString:
		for _, p := range t {
			visit(p)
		}
	case geom.MultiLineString:
		for _, ls := range t {
			s.countPoints(ls)
		}
	case geom.Polygon:
		for _, ring := range t {
			s.countPoints(ring)
		}
	case geom.MultiPolygon:
		for _, p := range t {
			s.countPoints(p)
		}
	}
}
