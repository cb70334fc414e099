package like_test

import (
	"testing"

	"orderadmin/internal/pkg/like"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	tests := []struct {
		fragment string
		want     string
	}{
		{"abc", "%abc%"},
		{"", "%%"},
		{"50%_off!", "%50!%!_off!!%"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, like.Contains(tt.fragment), tt.fragment)
	}
}
