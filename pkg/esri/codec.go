// pkg/esri/codec.go - Esri-style (ArcGIS REST JSON) codec
package esri

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/valpere/geoconv/pkg/codec"
	"github.com/valpere/geoconv/pkg/geom"
)

// Name is the dialect name used in configuration and on the command line
const Name = "esri"

// Defaults for Options
const (
	DefaultSpatialReference = `{"wkid":4326}`
	DefaultFeatureIDKey     = "OBJECTID"
)

// Wire keys of the Esri-style dialect
const (
	keyX                = "x"
	keyY                = "y"
	keyZ                = "z"
	keyM                = "m"
	keyHasZ             = "hasZ"
	keyHasM             = "hasM"
	keySpatialReference = "spatialReference"
	keyPoints           = "points"
	keyPaths            = "paths"
	keyRings            = "rings"
	keyGeometry         = "geometry"
	keyAttributes       = "attributes"
	keyFeatures         = "features"
)

// Codec converts between the geometry model and Esri JSON text. Options are
// fixed at construction, so a Codec is safe for concurrent use.
type Codec struct {
	options *Options
}

// Options configures encoding and feature identifiers
type Options struct {
	SpatialReference string `json:"spatial_reference" mapstructure:"spatial_reference"` // JSON object attached to every encoded geometry; empty omits it
	FeatureIDKey     string `json:"feature_id_key" mapstructure:"feature_id_key"`       // attribute holding the feature id
}

// DefaultOptions returns WGS84 output with OBJECTID identifiers
func DefaultOptions() *Options {
	return &Options{
		SpatialReference: DefaultSpatialReference,
		FeatureIDKey:     DefaultFeatureIDKey,
	}
}

// NewCodec creates an Esri codec with default options
func NewCodec() *Codec {
	return &Codec{options: DefaultOptions()}
}

// NewCodecWithOptions creates a codec with custom options. The spatial
// reference is stored compacted.
func NewCodecWithOptions(options *Options) (*Codec, error) {
	if err := ValidateOptions(options); err != nil {
		return nil, errors.Wrap(err, "invalid esri options")
	}

	normalized := *options
	if normalized.SpatialReference != "" {
		normalized.SpatialReference = string(pretty.Ugly([]byte(normalized.SpatialReference)))
	}

	return &Codec{options: &normalized}, nil
}

// ValidateOptions validates the codec options
func ValidateOptions(options *Options) error {
	if options == nil {
		return errors.New("options are required")
	}
	if options.FeatureIDKey == "" {
		return errors.New("feature id key must not be empty")
	}
	if sr := options.SpatialReference; sr != "" {
		if !gjson.Valid(sr) || !gjson.Parse(sr).IsObject() {
			return errors.Errorf("spatial reference must be a JSON object, got %q", sr)
		}
	}
	return nil
}

// Options returns a copy of the codec options
func (c *Codec) Options() Options {
	return *c.options
}

// Name implements codec.Codec
func (c *Codec) Name() string {
	return Name
}

// Decode implements codec.Decoder
func (c *Codec) Decode(text string) (geom.Object, error) {
	root, err := codec.Parse("Esri", text)
	if err != nil {
		return nil, err
	}
	return c.decodeObject(root, dims{})
}

// Encode implements codec.Encoder
func (c *Codec) Encode(obj geom.Object) (string, error) {
	if geom.IsNil(obj) {
		return "", errors.Wrap(codec.ErrNilObject, "esri")
	}

	buf, err := c.appendObject(make([]byte, 0, 256), obj)
	if err != nil {
		return "", errors.Wrapf(err, "esri: encoding %s", obj.Type())
	}
	return string(buf), nil
}

// DecodeAs decodes text into the concrete type T. The marker keys of the
// root object must belong to T's family: x/y for Point, points for
// MultiPoint, paths for LineString and MultiLineString, rings for Polygon
// and MultiPolygon, geometry/attributes for Feature and features for
// FeatureCollection.
func DecodeAs[T geom.Object](c *Codec, text string) (T, error) {
	var zero T
	root, err := codec.Parse("Esri", text)
	if err != nil {
		return zero, err
	}

	// an interface type argument has no marker family to compare against
	if any(zero) != nil {
		want := zero.Type()
		if familyOf(want) != detect(root) {
			return zero, codec.NewDecodeError(string(want), codec.ErrTypeMismatch)
		}
	}

	obj, err := c.decodeObject(root, dims{})
	if err != nil {
		return zero, err
	}

	typed, ok := obj.(T)
	if !ok {
		return zero, codec.NewDecodeError(string(obj.Type()), codec.ErrTypeMismatch)
	}
	return typed, nil
}

var _ codec.Codec = (*Codec)(nil)
