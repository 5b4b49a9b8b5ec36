// pkg/orbconv/orbconv_test.go - Unit tests for orb interop
package orbconv

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valpere/geoconv/pkg/geom"
	"github.com/valpere/geoconv/pkg/value"
)

func squareWithHole() geom.Polygon {
	return geom.Polygon{
		geom.Ring(geom.Pt(0, 0), geom.Pt(0, 10), geom.Pt(10, 10), geom.Pt(10, 0)),
		geom.Ring(geom.Pt(2, 2), geom.Pt(8, 2), geom.Pt(8, 8), geom.Pt(2, 8)),
	}
}

func TestToOrb(t *testing.T) {
	tests := []struct {
		name    string
		input   geom.Geometry
		want    orb.Geometry
		wantErr bool
	}{
		{
			name:  "point drops z",
			input: geom.Pt(1, 2, 3),
			want:  orb.Point{1, 2},
		},
		{
			name:  "line string",
			input: geom.Line(geom.Pt(0, 0), geom.Pt(1, 1)),
			want:  orb.LineString{{0, 0}, {1, 1}},
		},
		{
			name:  "polygon",
			input: geom.Polygon{geom.Ring(geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 1))},
			want:  orb.Polygon{{{0, 0}, {0, 1}, {1, 1}, {0, 0}}},
		},
		{
			name:  "collection skips nil members",
			input: geom.GeometryCollection{geom.Pt(1, 2), nil},
			want:  orb.Collection{orb.Point{1, 2}},
		},
		{
			name:    "short point",
			input:   geom.Pt(1),
			wantErr: true,
		},
		{
			name:    "short point in line",
			input:   geom.Line(geom.Pt(0, 0), geom.Pt(1)),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToOrb(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromOrb(t *testing.T) {
	tests := []struct {
		name  string
		input orb.Geometry
		want  geom.Geometry
	}{
		{"point", orb.Point{1, 2}, geom.Pt(1, 2)},
		{"ring", orb.Ring{{0, 0}, {0, 1}, {1, 1}, {0, 0}}, geom.Ring(geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 1))},
		{"multi polygon", orb.MultiPolygon{{{{0, 0}, {0, 1}, {1, 1}, {0, 0}}}}, geom.MultiPolygon{{geom.Ring(geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 1))}}},
		{"collection", orb.Collection{orb.Point{1, 2}}, geom.GeometryCollection{geom.Pt(1, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, geom.Equal(tt.want, FromOrb(tt.input)))
		})
	}

	bound := FromOrb(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{2, 1}})
	poly, ok := bound.(geom.Polygon)
	require.True(t, ok)
	assert.True(t, poly.IsValid())
}

func TestRoundTripThroughOrb(t *testing.T) {
	input := squareWithHole()

	converted, err := ToOrb(input)
	require.NoError(t, err)

	assert.True(t, geom.Equal(input, FromOrb(converted)))
}

func TestFeatureConversion(t *testing.T) {
	f := geom.NewFeature(geom.Pt(1, 2))
	f.SetID("a")
	f.SetProperty("n", value.Number(2))

	converted, err := ToFeature(f)
	require.NoError(t, err)
	assert.Equal(t, "a", converted.ID)
	assert.Equal(t, orb.Point{1, 2}, converted.Geometry)
	assert.Equal(t, 2.0, converted.Properties["n"])

	back := FromFeature(converted)
	assert.True(t, geom.Equal(f, back))

	numeric := geojson.NewFeature(orb.Point{0, 0})
	numeric.ID = 7.0
	assert.Equal(t, "7", *FromFeature(numeric).ID)

	fc, err := ToFeatureCollection(geom.FeatureCollection{f, nil, geom.NewFeature(nil)})
	require.NoError(t, err)
	assert.Len(t, fc.Features, 2)
	assert.Len(t, FromFeatureCollection(fc), 2)
}

func TestSummarize(t *testing.T) {
	fc := geom.FeatureCollection{
		geom.NewFeature(squareWithHole()),
		geom.NewFeature(geom.Line(geom.Pt(20, 0, 5), geom.Pt(23, 4, 5))),
		geom.NewFeature(nil),
	}

	s, err := Summarize(fc)
	require.NoError(t, err)

	assert.Equal(t, geom.TypeFeatureCollection, s.Type)
	assert.True(t, s.Valid)
	assert.Equal(t, 3, s.Features)
	assert.Equal(t, map[geom.Type]int{geom.TypePolygon: 1, geom.TypeLineString: 1}, s.Geometries)
	assert.Equal(t, 12, s.Points)
	assert.Equal(t, 3, s.Dimension)
	assert.InDelta(t, 64, s.Area, 1e-9)
	assert.InDelta(t, 5, s.Length, 1e-9)
	require.NotNil(t, s.Bound)
	assert.Equal(t, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{23, 10}}, *s.Bound)
}

func TestSummarizeEmpty(t *testing.T) {
	s, err := Summarize(geom.MultiPoint{})
	require.NoError(t, err)
	assert.Nil(t, s.Bound)
	assert.Equal(t, 0, s.Points)
	assert.Equal(t, 1, s.Geometries[geom.TypeMultiPoint])
}
