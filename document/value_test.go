package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "boolean", KindBool.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "array", KindArray.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestNumber_IsInteger(t *testing.T) {
	var zero float64
	assert.True(t, Number(0).IsInteger())
	assert.True(t, Number(-12).IsInteger())
	assert.True(t, Number(1<<53).IsInteger())
	assert.False(t, Number(1<<54).IsInteger())
	assert.False(t, Number(0.25).IsInteger())
	assert.False(t, Number(zero/zero).IsInteger())
}

func TestObject_OrderAndDelete(t *testing.T) {
	o := NewObject()
	o.Set("b", String("1")).Set("a", String("2")).Set("c", nil)
	assert.Equal(t, []string{"b", "a", "c"}, o.Keys())

	v, ok := o.Get("c")
	require.True(t, ok)
	assert.Equal(t, Null{}, v)

	o.Set("b", String("3"))
	assert.Equal(t, []string{"b", "a", "c"}, o.Keys())

	assert.True(t, o.Delete("a"))
	assert.False(t, o.Delete("a"))
	assert.Equal(t, []string{"b", "c"}, o.Keys())
	assert.Equal(t, 2, o.Len())

	var visited []string
	o.Range(func(k string, _ Value) bool {
		visited = append(visited, k)
		return false
	})
	assert.Equal(t, []string{"b"}, visited)
}

func TestObject_ZeroValueUsable(t *testing.T) {
	var o Object
	o.Set("k", Bool(true))
	assert.True(t, o.Has("k"))

	var nilObj *Object
	assert.Equal(t, 0, nilObj.Len())
	assert.Nil(t, nilObj.Keys())
	assert.False(t, nilObj.Has("k"))
}

func TestObj_PanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { Obj("odd") })
	assert.Panics(t, func() { Obj(1, "x") })
	assert.Panics(t, func() { Arr(make(chan int)) })
}

func TestClone_IsDeep(t *testing.T) {
	orig := Obj("info", Obj("title", "T"), "tags", Arr(Obj("name", "a")))
	cp := Clone(orig).(*Object)
	require.True(t, Equal(orig, cp))

	info, _ := cp.Get("info")
	info.(*Object).Set("title", String("changed"))
	tags, _ := cp.Get("tags")
	tags.(Array)[0].(*Object).Set("name", String("z"))

	title, _ := orig.values["info"].(*Object).Get("title")
	assert.Equal(t, String("T"), title)
	name, _ := orig.values["tags"].(Array)[0].(*Object).Get("name")
	assert.Equal(t, String("a"), name)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Obj("a", 1, "b", 2), Obj("b", 2, "a", 1)), "key order is ignored")
	assert.False(t, Equal(Arr(1, 2), Arr(2, 1)), "array order matters")
	assert.False(t, Equal(String("1"), Number(1)))
	assert.False(t, Equal(Obj("a", 1), Obj("a", 1, "b", 2)))
	assert.True(t, Equal(nil, (*Object)(nil)))
	assert.False(t, Equal(nil, Null{}))
}

func TestFromAny(t *testing.T) {
	type server struct {
		URL         string `json:"url"`
		Description string `json:"description,omitempty"`
	}

	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null{}},
		{"string", "x", String("x")},
		{"int", 3, Number(3)},
		{"uint8", uint8(200), Number(200)},
		{"float32", float32(0.5), Number(0.5)},
		{"json number", json.Number("12"), Number(12)},
		{"bool", true, Bool(true)},
		{"value passthrough", String("v"), String("v")},
		{"nil object", (*Object)(nil), Null{}},
		{"map sorted", map[string]any{"b": 1, "a": "x"}, Obj("a", "x", "b", 1)},
		{"map any keys", map[any]any{2: "two", "one": 1}, Obj("2", "two", "one", 1)},
		{"slice", []any{"a", 1.0, nil}, Arr("a", 1, nil)},
		{"struct", server{URL: "https://a"}, Obj("url", "https://a")},
		{"typed slice", []string{"x", "y"}, Arr("x", "y")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FromAny(func() {})
	assert.Error(t, err)
}

func TestToAny(t *testing.T) {
	v := Obj("a", Arr(1, "x", true, nil), "b", Obj())
	assert.Equal(t, map[string]any{
		"a": []any{1.0, "x", true, nil},
		"b": map[string]any{},
	}, ToAny(v))
}
