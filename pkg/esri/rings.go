// pkg/esri/rings.go - Polygon reconstruction from an unmarked ring list
package esri

import (
	"github.com/pkg/errors"

	"github.com/valpere/geoconv/pkg/codec"
	"github.com/valpere/geoconv/pkg/geom"
	"github.com/valpere/geoconv/pkg/planar"
)

// minRingPoints is the smallest closed ring that encloses an area
const minRingPoints = 4

// Reconstruct rebuilds polygon structure from Esri rings. Each ring is
// force-closed and dropped if it still has fewer than four points. Clockwise
// rings become outer rings in input order. Counter-clockwise rings are holes
// and attach to the first outer ring that contains them. A hole that no outer
// ring contains is reversed and becomes an outer ring of its own, which later
// holes may attach to. A single outer ring yields a Polygon, anything else a
// MultiPolygon.
func Reconstruct(rings []geom.LineString) geom.Geometry {
	var (
		polygons geom.MultiPolygon
		holes    []geom.LineString
	)

	for _, ring := range rings {
		ring = ring.Close()
		if len(ring) < minRingPoints {
			continue
		}
		if planar.IsClockwise(ring) {
			polygons = append(polygons, geom.Polygon{ring})
		} else {
			holes = append(holes, ring)
		}
	}

	for _, hole := range holes {
		if owner := containing(polygons, hole); owner >= 0 {
			polygons[owner] = append(polygons[owner], hole)
			continue
		}
		polygons = append(polygons, geom.Polygon{hole.Reverse()})
	}

	if len(polygons) == 1 {
		return polygons[0]
	}
	if polygons == nil {
		return geom.MultiPolygon{}
	}
	return polygons
}

// containing returns the index of the first polygon whose outer ring holds
// ring, or -1
func containing(polygons geom.MultiPolygon, ring geom.LineString) int {
	for i, p := range polygons {
		if planar.RingContainsRing(p.Outer(), ring) {
			return i
		}
	}
	return -1
}

// orientPolygon returns the rings of p with the outer ring clockwise and
// every hole counter-clockwise. Winding needs x and y on every point.
func orientPolygon(p geom.Polygon) ([]geom.LineString, error) {
	rings := make([]geom.LineString, len(p))
	for i, ring := range p {
		for j, pt := range ring {
			if len(pt) < 2 {
				return nil, errors.Wrapf(codec.ErrShortPoint, "ring %d point %d", i, j)
			}
		}
		rings[i] = planar.Orient(ring, i == 0)
	}
	return rings, nil
}
