// pkg/value/value.go - Recursive JSON value used for feature properties and attributes
package value

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/tidwall/gjson"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{"null", "bool", "number", "string", "array", "object"}

// String returns the JSON name of the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Value is an immutable JSON value: null, bool, number, string, array or object.
// The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	num  float64
	raw  string // number text as it appeared in the source document
	str  string
	arr  []Value
	obj  *Object
}

// Null returns the JSON null value
func Null() Value { return Value{} }

// Bool wraps a boolean
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String wraps a string
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps a list of values
func Array(items ...Value) Value {
	return Value{kind: KindArray, arr: append([]Value(nil), items...)}
}

// ObjectValue wraps an object. A nil object yields an empty one.
func ObjectValue(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, obj: o}
}

// Kind returns the variant held by v
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean and whether v holds one
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number and whether v holds one
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsString returns the string and whether v holds one
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsArray returns the array items and whether v holds an array
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsObject returns the object and whether v holds one
func (v Value) AsObject() (*Object, bool) { return v.obj, v.kind == KindObject }

// Text renders scalars as plain text: strings unquoted, numbers in their
// source form. It is used to turn identifiers of either kind into strings.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, true
	case KindNumber:
		if v.raw != "" {
			return v.raw, true
		}
		return string(AppendFloat(nil, v.num)), true
	case KindBool:
		return strconv.FormatBool(v.b), true
	}
	return "", false
}

// Equal reports deep equality. Numbers compare by value, not by source text.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num == other.num
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(other.obj)
	}
	return false
}

// Clone returns a deep copy of v
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		items := make([]Value, len(v.arr))
		for i, item := range v.arr {
			items[i] = item.Clone()
		}
		v.arr = items
	case KindObject:
		v.obj = v.obj.Clone()
	}
	return v
}

// FromResult converts a parsed gjson node into a Value. Missing nodes become null.
func FromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.True:
		return Bool(true)
	case gjson.False:
		return Bool(false)
	case gjson.Number:
		return Value{kind: KindNumber, num: r.Num, raw: r.Raw}
	case gjson.String:
		return String(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			items := make([]Value, 0)
			r.ForEach(func(_, item gjson.Result) bool {
				items = append(items, FromResult(item))
				return true
			})
			return Value{kind: KindArray, arr: items}
		}
		if r.IsObject() {
			return Value{kind: KindObject, obj: ObjectFromResult(r)}
		}
	}
	return Null()
}

// FromAny converts plain Go data (as produced by encoding/json) into a Value.
// Map keys are sorted so the result is deterministic.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case string:
		return String(t)
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromAny(item)
		}
		return Value{kind: KindArray, arr: items}
	case map[string]any:
		return ObjectValue(ObjectFromMap(t))
	}
	return String(fmt.Sprint(x))
}

// Any converts v back into plain Go data
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		items := make([]any, len(v.arr))
		for i, item := range v.arr {
			items[i] = item.Any()
		}
		return items
	case KindObject:
		return v.obj.Map()
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	return v.AppendJSON(nil), nil
}

// AppendJSON appends the compact JSON encoding of v to dst
func (v Value) AppendJSON(dst []byte) []byte {
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(dst, v.b)
	case KindNumber:
		if v.raw != "" {
			return append(dst, v.raw...)
		}
		return AppendFloat(dst, v.num)
	case KindString:
		return AppendString(dst, v.str)
	case KindArray:
		dst = append(dst, '[')
		for i, item := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = item.AppendJSON(dst)
		}
		return append(dst, ']')
	case KindObject:
		return v.obj.AppendJSON(dst)
	}
	return append(dst, "null"...)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
