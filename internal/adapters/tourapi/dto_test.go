package tourapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeItems(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"missing", ``, 0},
		{"single object", `{"item":{"code":"1","name":"서울"}}`, 1},
		{"array", `{"item":[{"code":"1"},{"code":"2"},{"code":"3"}]}`, 3},
		{"empty item", `{"item":null}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeItems[areaCodeDTO](json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}

	_, err := decodeItems[areaCodeDTO](json.RawMessage(`{"item":[1,2]}`))
	assert.Error(t, err)
}

func TestFlexTypes(t *testing.T) {
	var v struct {
		S flexString `json:"s"`
		N flexInt    `json:"n"`
		E flexInt    `json:"e"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"s":126.97,"n":"42","e":""}`), &v))
	assert.Equal(t, flexString("126.97"), v.S)
	assert.Equal(t, flexInt(42), v.N)
	assert.Equal(t, flexInt(0), v.E)

	assert.Error(t, json.Unmarshal([]byte(`{"n":"abc"}`), &v))
}
