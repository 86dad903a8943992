package sliceutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	names := []string{"add", "rm", "status"}

	assert.True(t, Contains(names, "rm"))
	assert.False(t, Contains(names, "bogus"))
	assert.False(t, Contains(nil, "add"))
}

func TestFilter(t *testing.T) {
	input := []string{"add", "", "status", ""}
	result := Filter(input, func(s string) bool { return s != "" })

	assert.Equal(t, []string{"add", "status"}, result)
	assert.Equal(t, []string{"add", "", "status", ""}, input, "input must not be modified")
}
