package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoolFilter(t *testing.T) {
	cases := map[string]*bool{
		"1":     boolPtr(true),
		"true":  boolPtr(true),
		" On ":  boolPtr(true),
		"yes":   boolPtr(true),
		"0":     boolPtr(false),
		"FALSE": boolPtr(false),
		"off":   boolPtr(false),
		"no":    boolPtr(false),
		"":      nil,
		"maybe": nil,
	}

	for raw, want := range cases {
		got := ParseBoolFilter(raw)
		if want == nil {
			assert.Nil(t, got, "raw=%q", raw)
			continue
		}
		require.NotNil(t, got, "raw=%q", raw)
		assert.Equal(t, *want, *got, "raw=%q", raw)
	}
}

func TestHasCategory(t *testing.T) {
	assert.False(t, HasCategory(""))
	assert.False(t, HasCategory("all"))
	assert.True(t, HasCategory("design"))
}

func boolPtr(v bool) *bool {
	return &v
}
