package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalValue_Types(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{"string", `"bolt"`, String("bolt")},
		{"number", `12.5`, Number(12.5)},
		{"integer", `42`, Number(42)},
		{"bool true", `true`, Bool(true)},
		{"bool false", `false`, Bool(false)},
		{"null", `null`, Null{}},
		{"array", `["a", 1]`, Array{String("a"), Number(1)}},
		{"object", `{"name":"Nut","qty":3}`, Object{"name": String("Nut"), "qty": Number(3)}},
		{"nested", `{"material":{"name":"Steel"}}`, Object{"material": Object{"name": String("Steel")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalValue([]byte(tt.input))
			require.NoError(t, err)
			assert.True(t, Equal(tt.want, got), "got %#v, want %#v", got, tt.want)
		})
	}
}

func TestUnmarshalValue_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "{broken", `"unterminated`} {
		_, err := UnmarshalValue([]byte(input))
		assert.Error(t, err, "input %q", input)
	}
}

func TestValue_JSONRoundTrip(t *testing.T) {
	original := Object{
		"id":       String("mat-1"),
		"name":     String("Steel Rod"),
		"quantity": Number(120),
		"active":   Bool(true),
		"tags":     Array{String("raw"), String("metal")},
		"note":     Null{},
	}

	data, err := MarshalValue(original)
	require.NoError(t, err)

	decoded, err := UnmarshalValue(data)
	require.NoError(t, err)
	assert.True(t, Equal(original, decoded))
}

func TestObject_UnmarshalJSON_ViaEncodingJSON(t *testing.T) {
	var obj Object
	err := json.Unmarshal([]byte(`{"code":"A1","qty":7,"meta":{"lot":"x"}}`), &obj)
	require.NoError(t, err)

	assert.Equal(t, String("A1"), obj["code"])
	assert.Equal(t, Number(7), obj["qty"])

	meta, ok := obj["meta"].(Object)
	require.True(t, ok)
	assert.Equal(t, String("x"), meta["lot"])
}

func TestFromAny(t *testing.T) {
	got, err := FromAny(map[string]any{
		"name":  "Bolt",
		"qty":   3,
		"price": 1.25,
		"ok":    true,
		"none":  nil,
		"list":  []any{"a", 2},
	})
	require.NoError(t, err)

	want := Object{
		"name":  String("Bolt"),
		"qty":   Number(3),
		"price": Number(1.25),
		"ok":    Bool(true),
		"none":  Null{},
		"list":  Array{String("a"), Number(2)},
	}
	assert.True(t, Equal(want, got))
}

func TestFromAny_Unsupported(t *testing.T) {
	_, err := FromAny(struct{ X int }{1})
	assert.Error(t, err)
}

func TestToAny_InvertsFromAny(t *testing.T) {
	in := map[string]any{"name": "Nut", "qty": float64(3), "ok": false}
	v, err := FromAny(in)
	require.NoError(t, err)
	assert.Equal(t, in, ToAny(v))
}
