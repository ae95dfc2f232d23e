package oaspath

import (
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/oasdoc/oaserrors"
)

// Path addresses a location inside a document as an ordered list of object
// keys. A Path is immutable: every method that derives a new Path copies the
// segments, so registry paths can be shared freely.
//
// The zero Path has no segments and is rejected by every document operation.
type Path struct {
	segments []string
}

// New builds a Path from explicit segments. Segments are used verbatim, so a
// segment may itself contain dots (e.g. the route "/v1.0/users").
func New(segments ...string) (Path, error) {
	if len(segments) == 0 {
		return Path{}, &oaserrors.ArgumentError{Op: "new", Arg: "path", Message: "no segments"}
	}
	for i, s := range segments {
		if s == "" {
			return Path{}, &oaserrors.ArgumentError{Op: "new", Arg: "path", Message: "empty segment at index " + strconv.Itoa(i)}
		}
	}
	return Path{segments: slices.Clone(segments)}, nil
}

// Parse splits a dotted string ("components.schemas") into a Path.
// Use [New] or [Path.Child] when a segment must contain a dot.
func Parse(dotted string) (Path, error) {
	if dotted == "" {
		return Path{}, &oaserrors.ArgumentError{Op: "parse", Arg: "path", Message: "empty path"}
	}
	parts := strings.Split(dotted, ".")
	for i, s := range parts {
		if s == "" {
			return Path{}, &oaserrors.ArgumentError{
				Op:      "parse",
				Arg:     "path",
				Message: "empty segment at index " + strconv.Itoa(i) + " in " + strconv.Quote(dotted),
			}
		}
	}
	return Path{segments: parts}, nil
}

// MustParse is like [Parse] but panics on error.
// It is intended for package-level path tables.
func MustParse(dotted string) Path {
	p, err := Parse(dotted)
	if err != nil {
		panic(err)
	}
	return p
}

// Child returns a new Path with key appended as a single segment.
// An empty key yields the zero Path.
func (p Path) Child(key string) Path {
	if key == "" || p.IsZero() {
		return Path{}
	}
	segs := make([]string, len(p.segments)+1)
	copy(segs, p.segments)
	segs[len(p.segments)] = key
	return Path{segments: segs}
}

// Parent returns the Path without its last segment.
// The parent of a single-segment path is the zero Path.
func (p Path) Parent() Path {
	if len(p.segments) <= 1 {
		return Path{}
	}
	return Path{segments: p.segments[:len(p.segments)-1 : len(p.segments)-1]}
}

// Last returns the final segment, or "" for the zero Path.
func (p Path) Last() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// Segment returns segment i.
func (p Path) Segment(i int) string {
	return p.segments[i]
}

// Segments returns a copy of the segments.
func (p Path) Segments() []string {
	return slices.Clone(p.segments)
}

// IsZero reports whether the path has no segments.
func (p Path) IsZero() bool {
	return len(p.segments) == 0
}

// Equal reports whether both paths have identical segments.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p.segments, other.segments)
}

// HasPrefix reports whether prefix is a leading subsequence of p.
func (p Path) HasPrefix(prefix Path) bool {
	if prefix.IsZero() || len(prefix.segments) > len(p.segments) {
		return false
	}
	return slices.Equal(p.segments[:len(prefix.segments)], prefix.segments)
}

// String renders the path dot-joined, e.g. "info.contact.email".
func (p Path) String() string {
	return strings.Join(p.segments, ".")
}

// pointerEscaper applies RFC 6901 escaping.
var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer renders the path as a local JSON Pointer reference, suitable for
// "$ref" values: "#/components/schemas/User", "#/paths/~1pets~1{id}".
func (p Path) Pointer() string {
	if len(p.segments) == 0 {
		return "#"
	}
	var b strings.Builder
	b.WriteByte('#')
	for _, s := range p.segments {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(s))
	}
	return b.String()
}
