// pkg/codec/errors.go - Decode error taxonomy shared by all codecs
package codec

import "github.com/pkg/errors"

// Decode failure reasons. A DecodeError always unwraps to exactly one of these.
var (
	ErrEmptyInput          = errors.New("empty input")
	ErrInvalidJSON         = errors.New("invalid JSON text")
	ErrNotObject           = errors.New("value is not an object")
	ErrNotArray            = errors.New("value is not an array")
	ErrTypeNotFound        = errors.New("type key not found")
	ErrUnknownType         = errors.New("unrecognized type")
	ErrCoordinatesNotFound = errors.New("coordinates key not found")
	ErrTooShort            = errors.New("coordinate array is too short")
	ErrNotNumber           = errors.New("coordinate value is not a number")
	ErrGeometriesNotFound  = errors.New("geometries key not found")
	ErrFeaturesNotFound    = errors.New("features key not found")
	ErrGeometryNotFound    = errors.New("geometry key not found")
	ErrNotGeometry         = errors.New("element is not a geometry")
	ErrNotFeature          = errors.New("element is not a feature")
	ErrNotLinearRing       = errors.New("inner line string was not a linear ring")
	ErrPropertiesNotObject = errors.New("properties is not an object")
	ErrAttributesNotObject = errors.New("attributes is not an object")
	ErrTypeMismatch        = errors.New("decoded type does not match the requested type")
)

// Encode failure reasons
var (
	ErrNilObject       = errors.New("cannot encode a nil value")
	ErrUnsupportedType = errors.New("type has no representation in this format")
	ErrShortPoint      = errors.New("point has fewer than two components")
)

// DecodeError reports the first violation found while decoding. Context names
// the structure being parsed, e.g. "Polygon" or "Feature geometry".
type DecodeError struct {
	Context string
	Reason  error
}

// NewDecodeError creates a decode error for the given context and reason
func NewDecodeError(context string, reason error) *DecodeError {
	return &DecodeError{
		Context: context,
		Reason:  reason,
	}
}

func (e *DecodeError) Error() string {
	if e.Context == "" {
		return e.Reason.Error()
	}
	return e.Context + ": " + e.Reason.Error()
}

// Unwrap exposes the reason to errors.Is
func (e *DecodeError) Unwrap() error {
	return e.Reason
}

// IsDecodeError reports whether err is, or wraps, a DecodeError
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
