package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCommandName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "simple word", input: "status", expected: true},
		{name: "dashed", input: "remote-add", expected: true},
		{name: "trailing digit", input: "v2", expected: true},
		{name: "empty", input: "", expected: false},
		{name: "leading digit", input: "2fast", expected: false},
		{name: "leading dash", input: "-x", expected: false},
		{name: "flag-like", input: "--force", expected: false},
		{name: "trailing dash", input: "add-", expected: false},
		{name: "uppercase", input: "Remote", expected: false},
		{name: "whitespace", input: "remote add", expected: false},
		{name: "underscore", input: "remote_add", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidCommandName(tt.input))
		})
	}
}
