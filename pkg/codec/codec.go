// pkg/codec/codec.go - Codec interfaces and the decode-then-encode converter
package codec

import (
	"github.com/pkg/errors"

	"github.com/valpere/geoconv/pkg/geom"
)

// Decoder turns JSON text into a model value
type Decoder interface {
	Decode(text string) (geom.Object, error)
}

// Encoder turns a model value into JSON text
type Encoder interface {
	Encode(obj geom.Object) (string, error)
}

// Codec is a bidirectional mapping between the model and one JSON dialect
type Codec interface {
	Decoder
	Encoder
	// Name returns the dialect name, e.g. "geojson"
	Name() string
}

// Converter chains a decoder and an encoder. It replaces a process-wide
// "current codec" setting: callers build one per conversion direction.
type Converter struct {
	Decoder Decoder
	Encoder Encoder
}

// NewConverter creates a converter reading with from and writing with to
func NewConverter(from Decoder, to Encoder) *Converter {
	return &Converter{
		Decoder: from,
		Encoder: to,
	}
}

// Decode parses text with the source dialect
func (c *Converter) Decode(text string) (geom.Object, error) {
	return c.Decoder.Decode(text)
}

// Encode writes obj with the target dialect
func (c *Converter) Encode(obj geom.Object) (string, error) {
	return c.Encoder.Encode(obj)
}

// Convert decodes text with the source dialect and re-encodes it with the
// target dialect
func (c *Converter) Convert(text string) (string, error) {
	obj, err := c.Decoder.Decode(text)
	if err != nil {
		return "", errors.Wrap(err, "decode failed")
	}

	out, err := c.Encoder.Encode(obj)
	if err != nil {
		return "", errors.Wrap(err, "encode failed")
	}

	return out, nil
}
