// pkg/codec/tree.go - Typed accessors over the gjson document tree
package codec

import (
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

// Parse validates text and returns its root, which must be a JSON object
func Parse(context, text string) (gjson.Result, error) {
	if strings.TrimSpace(text) == "" {
		return gjson.Result{}, NewDecodeError(context, ErrEmptyInput)
	}
	if !gjson.Valid(text) {
		return gjson.Result{}, NewDecodeError(context, ErrInvalidJSON)
	}
	return Object(context, gjson.Parse(text))
}

// Object returns r when it is a JSON object
func Object(context string, r gjson.Result) (gjson.Result, error) {
	if !r.IsObject() {
		return gjson.Result{}, NewDecodeError(context, ErrNotObject)
	}
	return r, nil
}

// Array returns the elements of r when it is a JSON array
func Array(context string, r gjson.Result) ([]gjson.Result, error) {
	if !r.IsArray() {
		return nil, NewDecodeError(context, ErrNotArray)
	}
	return r.Array(), nil
}

// Number returns the numeric value of r
func Number(context string, r gjson.Result) (float64, error) {
	if r.Type != gjson.Number {
		return 0, NewDecodeError(context, ErrNotNumber)
	}
	return r.Num, nil
}

// NumberOrNull is Number that also accepts an explicit null, read as NaN
func NumberOrNull(context string, r gjson.Result) (float64, error) {
	if r.Exists() && r.Type == gjson.Null {
		return math.NaN(), nil
	}
	return Number(context, r)
}

// Numbers reads a coordinate array of at least min entries. A null entry
// is read as NaN, but at least two entries must be numbers.
func Numbers(context string, r gjson.Result, min int) ([]float64, error) {
	items, err := Array(context, r)
	if err != nil {
		return nil, err
	}
	if len(items) < min {
		return nil, NewDecodeError(context, ErrTooShort)
	}
	values := make([]float64, len(items))
	numbers := 0
	for i, item := range items {
		if values[i], err = NumberOrNull(context, item); err != nil {
			return nil, err
		}
		if !math.IsNaN(values[i]) {
			numbers++
		}
	}
	if numbers < 2 {
		return nil, NewDecodeError(context, ErrNotNumber)
	}
	return values, nil
}

// IsEmptyObject reports whether r is absent, null or {}
func IsEmptyObject(r gjson.Result) bool {
	if !r.Exists() || r.Type == gjson.Null {
		return true
	}
	if !r.IsObject() {
		return false
	}
	empty := true
	r.ForEach(func(_, _ gjson.Result) bool {
		empty = false
		return false
	})
	return empty
}
