package document

import (
	"strconv"

	"github.com/erraggy/oasdoc/oaserrors"
	"github.com/erraggy/oasdoc/oaspath"
)

// Document is one mutable OpenAPI definition. The caller owns it, passes it
// by pointer to every operation and is responsible for serializing it.
//
// Concurrency: Document is not safe for concurrent use. Callers sharing a
// Document across goroutines must synchronize access themselves.
type Document struct {
	root *Object
}

// New creates an empty Document.
func New() *Document {
	return &Document{root: NewObject()}
}

// FromObject wraps root as a Document without copying it.
// A nil root yields an empty Document.
func FromObject(root *Object) *Document {
	if root == nil {
		root = NewObject()
	}
	return &Document{root: root}
}

// Root returns the top-level object.
func (d *Document) Root() *Object {
	if d == nil {
		return nil
	}
	if d.root == nil {
		d.root = NewObject()
	}
	return d.root
}

// Get returns the value at p. It reports false when any segment is missing
// or an intermediate node is not an object. Get never mutates the document.
func (d *Document) Get(p oaspath.Path) (Value, bool) {
	if d == nil || p.IsZero() {
		return nil, false
	}
	cur := Value(d.root)
	for i := 0; i < p.Len(); i++ {
		obj, ok := cur.(*Object)
		if !ok || obj == nil {
			return nil, false
		}
		if cur, ok = obj.Get(p.Segment(i)); !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set stores v at p, creating missing intermediate objects on the way.
// Existing intermediate objects are reused, never replaced; the final value
// is overwritten whatever its previous kind. v is stored as-is, not copied,
// so a later Get(p) returns the identical value.
//
// Set returns an [oaserrors.ArgumentError] for a nil document, a zero path or
// a nil value, and an [oaserrors.PathError] when an existing intermediate
// node is not an object. In both cases the document is left untouched.
func (d *Document) Set(p oaspath.Path, v Value) error {
	return d.set("set", p, v)
}

// SetKeyed stores v under key inside the object at base, i.e. at
// base.Child(key). It is how named components and path items are added.
func (d *Document) SetKeyed(base oaspath.Path, key string, v Value) error {
	if key == "" {
		return &oaserrors.ArgumentError{Op: "setKeyed", Arg: "key", Message: "empty key"}
	}
	if base.IsZero() {
		return &oaserrors.ArgumentError{Op: "setKeyed", Arg: "path", Message: "empty path"}
	}
	return d.set("setKeyed", base.Child(key), v)
}

// AppendMany appends values, in order, to the array at p and returns how many
// were appended.
//
// If p is absent or holds something other than an array, AppendMany does
// nothing and returns 0 with a nil error: it never creates the array. Sections
// populated this way (servers, tags, security) must be initialized to an empty
// array first. An empty values list is always a no-op.
func (d *Document) AppendMany(p oaspath.Path, values ...Value) (int, error) {
	if d == nil {
		return 0, &oaserrors.ArgumentError{Op: "appendMany", Arg: "document", Message: "nil document"}
	}
	if p.IsZero() {
		return 0, &oaserrors.ArgumentError{Op: "appendMany", Arg: "path", Message: "empty path"}
	}
	for i, v := range values {
		if isNil(v) {
			return 0, &oaserrors.ArgumentError{Op: "appendMany", Arg: "value", Message: "nil element at index " + strconv.Itoa(i)}
		}
	}
	if len(values) == 0 {
		return 0, nil
	}

	cur, ok := d.Get(p)
	if !ok {
		return 0, nil
	}
	arr, ok := cur.(Array)
	if !ok {
		return 0, nil
	}

	combined := make(Array, 0, len(arr)+len(values))
	combined = append(combined, arr...)
	combined = append(combined, values...)
	if err := d.set("appendMany", p, combined); err != nil {
		return 0, err
	}
	return len(values), nil
}

// Delete removes the value at p and reports whether it was present.
// Emptied parent objects are kept.
func (d *Document) Delete(p oaspath.Path) bool {
	if d == nil || p.IsZero() {
		return false
	}
	parent := d.root
	if p.Len() > 1 {
		v, ok := d.Get(p.Parent())
		if !ok {
			return false
		}
		if parent, ok = v.(*Object); !ok {
			return false
		}
	}
	return parent.Delete(p.Last())
}

func (d *Document) set(op string, p oaspath.Path, v Value) error {
	if d == nil {
		return &oaserrors.ArgumentError{Op: op, Arg: "document", Message: "nil document"}
	}
	if p.IsZero() {
		return &oaserrors.ArgumentError{Op: op, Arg: "path", Message: "empty path"}
	}
	if isNil(v) {
		return &oaserrors.ArgumentError{Op: op, Arg: "value", Message: "nil value"}
	}
	if err := d.checkWalkable(p); err != nil {
		return err
	}

	obj := d.Root()
	for i := 0; i < p.Len()-1; i++ {
		key := p.Segment(i)
		next, ok := obj.Get(key)
		if !ok {
			child := NewObject()
			obj.Set(key, child)
			obj = child
			continue
		}
		obj = next.(*Object)
	}
	obj.Set(p.Last(), v)
	return nil
}

// checkWalkable verifies, without mutating, that every existing intermediate
// node along p is an object.
func (d *Document) checkWalkable(p oaspath.Path) error {
	obj := d.root
	for i := 0; i < p.Len()-1; i++ {
		next, ok := obj.Get(p.Segment(i))
		if !ok {
			return nil
		}
		child, isObj := next.(*Object)
		if !isObj {
			at, _ := oaspath.New(p.Segments()[:i+1]...)
			return &oaserrors.PathError{Path: p.String(), At: at.String(), Found: next.Kind().String()}
		}
		obj = child
	}
	return nil
}
