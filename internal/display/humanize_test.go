package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeBytes(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0B"},
		{1023, "1023B"},
		{1024, "1.0KiB"},
		{1536, "1.5KiB"},
		{512 * 1024 * 1024, "512.0MiB"},
		{1024 * 1024 * 1024, "1.0GiB"},
		{10 * 1024 * 1024 * 1024, "10.0GiB"},
		{1024 * 1024 * 1024 * 1024, "1.0TiB"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, HumanizeBytes(test.input), "HumanizeBytes(%d)", test.input)
	}
}
