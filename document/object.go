package document

import "slices"

// Object is a JSON object that remembers key insertion order.
// Re-setting an existing key keeps its original position.
//
// The zero value is an empty object ready to use.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Set stores v under key. A nil v is stored as [Null].
func (o *Object) Set(key string, v Value) *Object {
	if isNil(v) {
		v = Null{}
	}
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
	return o
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if o == nil {
		return false
	}
	if _, ok := o.values[key]; !ok {
		return false
	}
	delete(o.values, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
	return true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// Range calls fn for each entry in insertion order until fn returns false.
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

// Obj builds an Object from alternating key/value pairs, which keeps literal
// documents in tests and examples readable:
//
//	document.Obj("title", document.String("T"), "version", document.String("1.0"))
//
// It panics if pairs has odd length or a key is not a string.
func Obj(pairs ...any) *Object {
	if len(pairs)%2 != 0 {
		panic("document: Obj requires key/value pairs")
	}
	o := NewObject()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic("document: Obj key must be a string")
		}
		v, err := FromAny(pairs[i+1])
		if err != nil {
			panic(err)
		}
		o.Set(key, v)
	}
	return o
}

// Arr builds an Array from Go values via [FromAny]. It panics on
// unconvertible input.
func Arr(items ...any) Array {
	out := make(Array, 0, len(items))
	for _, item := range items {
		v, err := FromAny(item)
		if err != nil {
			panic(err)
		}
		out = append(out, v)
	}
	return out
}
