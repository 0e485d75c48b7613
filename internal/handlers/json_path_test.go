package handlers

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mediaBody struct {
	Title string `json:"title"`
	Media []struct {
		Type string `json:"type"`
		Path string `json:"path"`
	} `json:"media"`
	Order int `json:"order"`
}

// typeErrorPath - путь поля для ошибки типа, как его находит BindJSON
func typeErrorPath(t *testing.T, body string) string {
	t.Helper()

	var dst mediaBody
	err := json.Unmarshal([]byte(body), &dst)
	var typeErr *json.UnmarshalTypeError
	require.True(t, errors.As(err, &typeErr), "ожидалась ошибка типа: %v", err)

	path, ok := fieldPathAt([]byte(body), typeErr.Offset)
	require.True(t, ok)
	return path
}

func TestFieldPathAt(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"top level", `{"title":"x","order":"first"}`, "order"},
		{"first media item", `{"media":[{"type":5,"path":"/a.jpg"}]}`, "media.0.type"},
		{"second media item", `{"media":[{"type":"image","path":"/a.jpg"},{"type":"image","path":7}]}`, "media.1.path"},
		{"object instead of string", `{"media":[{"type":{"a":1}}]}`, "media.0.type"},
		{"array instead of string", ` { "title" : ["x"] }`, "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, typeErrorPath(t, tt.body))
		})
	}
}

func TestFieldPathAt_InvalidJSON(t *testing.T) {
	_, ok := fieldPathAt([]byte(`{"media":[`), 100)
	assert.False(t, ok)
}
