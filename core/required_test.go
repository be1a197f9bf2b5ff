package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	var nilMap map[string]any
	var nilPtr *string

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"empty bytes", []byte{}, true},
		{"empty slice", []string{}, true},
		{"empty map", map[string]any{}, true},
		{"nil map", nilMap, true},
		{"nil pointer", nilPtr, true},
		{"pointer to empty string", ptr(""), true},
		{"empty array", [0]int{}, true},
		{"non-empty string", "x", false},
		{"non-empty map", map[string]any{"a": 1}, false},
		{"zero int", 0, false},
		{"false", false, false},
		{"struct", struct{}{}, false},
		{"raw json", []byte(`{}`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmpty(tt.value))
		})
	}
}

func TestCheckRequired(t *testing.T) {
	assert.NoError(t, CheckRequired(Arg{"repository", "r"}, Arg{"body", map[string]any{"type": "fs"}}))

	err := CheckRequired(Arg{"repository", "r"}, Arg{"snapshot", ""}, Arg{"body", nil})
	var ve *ValidationError
	if assert.ErrorAs(t, err, &ve) {
		assert.Equal(t, "snapshot", ve.Argument)
	}

	err = CheckRequired(Arg{"body", []any{}})
	if assert.ErrorAs(t, err, &ve) {
		assert.Equal(t, "body", ve.Argument)
	}
}
