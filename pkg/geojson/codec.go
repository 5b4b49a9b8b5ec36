// pkg/geojson/codec.go - GeoJSON-style codec
package geojson

import (
	"github.com/pkg/errors"

	"github.com/valpere/geoconv/pkg/codec"
	"github.com/valpere/geoconv/pkg/geom"
)

// Name is the dialect name used in configuration and on the command line
const Name = "geojson"

// Wire keys of the GeoJSON-style dialect
const (
	keyType        = "type"
	keyCoordinates = "coordinates"
	keyGeometries  = "geometries"
	keyGeometry    = "geometry"
	keyProperties  = "properties"
	keyFeatures    = "features"
	keyID          = "id"
)

// Codec converts between the geometry model and GeoJSON text. It holds no
// state and is safe for concurrent use.
type Codec struct{}

// NewCodec creates a GeoJSON codec
func NewCodec() *Codec {
	return &Codec{}
}

// Name implements codec.Codec
func (c *Codec) Name() string {
	return Name
}

// Decode implements codec.Decoder
func (c *Codec) Decode(text string) (geom.Object, error) {
	root, err := codec.Parse("GeoJSON", text)
	if err != nil {
		return nil, err
	}
	return decodeObject(root)
}

// Encode implements codec.Encoder
func (c *Codec) Encode(obj geom.Object) (string, error) {
	if geom.IsNil(obj) {
		return "", errors.Wrap(codec.ErrNilObject, "geojson")
	}

	buf, err := appendObject(make([]byte, 0, 256), obj)
	if err != nil {
		return "", errors.Wrapf(err, "geojson: encoding %s", obj.Type())
	}
	return string(buf), nil
}

// DecodeAs decodes text into the concrete type T after checking that the
// top-level "type" tag names T.
func DecodeAs[T geom.Object](c *Codec, text string) (T, error) {
	var zero T
	root, err := codec.Parse("GeoJSON", text)
	if err != nil {
		return zero, err
	}

	// an interface type argument has no tag to compare against
	if any(zero) != nil {
		want := zero.Type()
		if got := root.Get(keyType).String(); got != string(want) {
			return zero, codec.NewDecodeError(string(want), codec.ErrTypeMismatch)
		}
	}

	obj, err := decodeObject(root)
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
