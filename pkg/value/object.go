// pkg/value/object.go - Insertion-ordered JSON object
package value

import "github.com/tidwall/gjson"

// Object is a JSON object that remembers member insertion order, so encoding
// a decoded object reproduces the source key order.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject creates an empty object
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// ObjectFromResult builds an object from a parsed gjson object node.
// Repeated keys keep their first position and their last value.
func ObjectFromResult(r gjson.Result) *Object {
	o := NewObject()
	r.ForEach(func(key, val gjson.Result) bool {
		o.Set(key.String(), FromResult(val))
		return true
	})
	return o
}

// ObjectFromMap builds an object from a Go map with keys in sorted order
func ObjectFromMap(m map[string]any) *Object {
	o := NewObject()
	for _, k := range sortedKeys(m) {
		o.Set(k, FromAny(m[k]))
	}
	return o
}

// Len returns the number of members
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the member names in order
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Get returns the member value and whether it exists
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is a member
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set adds or replaces a member. Replacing keeps the original position.
func (o *Object) Set(key string, v Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Delete removes a member if present
func (o *Object) Delete(key string) {
	if _, exists := o.values[key]; !exists {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Range calls fn for each member in order until fn returns false
func (o *Object) Range(fn func(key string, v Value) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// Clone returns a deep copy
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	c := &Object{
		keys:   append([]string(nil), o.keys...),
		values: make(map[string]Value, len(o.values)),
	}
	for k, v := range o.values {
		c.values[k] = v.Clone()
	}
	return c
}

// Equal compares members regardless of order
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	equal := true
	o.Range(func(key string, v Value) bool {
		ov, ok := other.Get(key)
		equal = ok && v.Equal(ov)
		return equal
	})
	return equal
}

// Map converts the object into a plain Go map
func (o *Object) Map() map[string]any {
	m := make(map[string]any, o.Len())
	o.Range(func(key string, v Value) bool {
		m[key] = v.Any()
		return true
	})
	return m
}

// MarshalJSON implements json.Marshaler
func (o *Object) MarshalJSON() ([]byte, error) {
	return o.AppendJSON(nil), nil
}

// AppendJSON appends the compact JSON encoding of o to dst
func (o *Object) AppendJSON(dst []byte) []byte {
	dst = append(dst, '{')
	i := 0
	o.Range(func(key string, v Value) bool {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = AppendString(dst, key)
		dst = append(dst, ':')
		dst = v.AppendJSON(dst)
		i++
		return true
	})
	return append(dst, '}')
}
