package document

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/erraggy/oasdoc/oaserrors"
)

// FromAny converts generic Go data into a [Value].
//
// It accepts the shapes produced by encoding/json and YAML decoding
// (map[string]any, []any, string, float64, bool, nil), any Go integer or float,
// json.Number, and existing Values. Keys of Go maps are unordered, so objects
// built from a map get their keys in lexical order. Anything else (structs,
// typed slices and maps) goes through encoding/json, which keeps struct field
// order.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null{}, nil
	case Value:
		if isNil(t) {
			return Null{}, nil
		}
		return t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(t), nil
	case int:
		return Number(t), nil
	case int8:
		return Number(t), nil
	case int16:
		return Number(t), nil
	case int32:
		return Number(t), nil
	case int64:
		return Number(t), nil
	case uint:
		return Number(t), nil
	case uint8:
		return Number(t), nil
	case uint16:
		return Number(t), nil
	case uint32:
		return Number(t), nil
	case uint64:
		return Number(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, &oaserrors.ParseError{Message: "invalid number " + t.String(), Cause: err}
		}
		return Number(f), nil
	case map[string]any:
		obj := NewObject()
		for _, k := range sortedKeys(t) {
			v, err := FromAny(t[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, v)
		}
		return obj, nil
	case map[any]any:
		obj := NewObject()
		strKeyed := make(map[string]any, len(t))
		for k, v := range t {
			strKeyed[fmt.Sprint(k)] = v
		}
		for _, k := range sortedKeys(strKeyed) {
			v, err := FromAny(strKeyed[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, v)
		}
		return obj, nil
	case []any:
		arr := make(Array, 0, len(t))
		for _, item := range t {
			v, err := FromAny(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return nil, &oaserrors.ParseError{Message: fmt.Sprintf("cannot convert %T", x), Cause: err}
		}
		return ParseJSON(data)
	}
}

// ToAny converts v into the generic shapes encoding/json produces:
// map[string]any, []any, string, float64, bool and nil.
func ToAny(v Value) any {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return nil
		}
		m := make(map[string]any, t.Len())
		t.Range(func(k string, child Value) bool {
			m[k] = ToAny(child)
			return true
		})
		return m
	case Array:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = ToAny(child)
		}
		return out
	case String:
		return string(t)
	case Number:
		return float64(t)
	case Bool:
		return bool(t)
	default:
		return nil
	}
}

// checkFinite rejects NaN and infinities, which JSON cannot represent.
func checkFinite(n Number) error {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("document: unsupported number %v", f)
	}
	return nil
}
