package utils_test

import (
	"testing"

	"bunny-manager/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want string
	}{
		{"String", "abc", "abc"},
		{"Bytes", []byte("abc"), "abc"},
		{"Int", 7, "7"},
		{"Float", 1.5, "1.5"},
		{"Bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToString(tt.val))
		})
	}
}
