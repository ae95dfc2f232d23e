package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/erraggy/oasdoc/oaserrors"
)

// MarshalJSON writes the object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the object's contents, keeping source key order.
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := ParseJSON(data)
	if err != nil {
		return err
	}
	obj, ok := v.(*Object)
	if !ok {
		return &oaserrors.ParseError{Message: "expected a JSON object, got " + v.Kind().String()}
	}
	*o = *obj
	return nil
}

// MarshalJSON writes the array; a nil Array encodes as [].
func (a Array) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON writes the null literal.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON encodes any value compactly, keeping object key order.
func MarshalJSON(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON writes the document root with keys in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.Root().MarshalJSON()
}

// UnmarshalJSON replaces the document root.
func (d *Document) UnmarshalJSON(data []byte) error {
	root := NewObject()
	if err := root.UnmarshalJSON(data); err != nil {
		return err
	}
	d.root = root
	return nil
}

// MarshalIndent is like MarshalJSON but indents the output.
func (d *Document) MarshalIndent(prefix, indent string) ([]byte, error) {
	data, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			buf.WriteString("null")
			return nil
		}
		buf.WriteByte('{')
		for i, k := range t.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, t.values[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case Array:
		buf.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case String:
		return writeJSONString(buf, string(t))
	case Number:
		if err := checkFinite(t); err != nil {
			return err
		}
		if t.IsInteger() {
			buf.WriteString(strconv.FormatInt(int64(t), 10))
			return nil
		}
		buf.WriteString(strconv.FormatFloat(float64(t), 'g', -1, 64))
	case Bool:
		buf.WriteString(strconv.FormatBool(bool(t)))
	case Null, nil:
		buf.WriteString("null")
	default:
		return fmt.Errorf("document: unsupported value type %T", v)
	}
	return nil
}

// writeJSONString writes s as a JSON string without HTML escaping, so
// descriptions containing <, > or & stay readable.
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode always terminates with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// ParseJSON decodes a single JSON value, keeping object key order.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, &oaserrors.ParseError{Message: "invalid JSON", Cause: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &oaserrors.ParseError{Message: "unexpected data after JSON value"}
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, not a string", keyTok)
				}
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := Array{}
			for dec.More() {
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", rune(t))
		}
	case string:
		return String(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return Number(f), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// JSON encodes the document, indenting with indent when it is non-empty.
func (d *Document) JSON(indent string) ([]byte, error) {
	if indent == "" {
		return d.MarshalJSON()
	}
	return d.MarshalIndent("", indent)
}
