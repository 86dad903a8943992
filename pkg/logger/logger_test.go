package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		pattern   string
		expected  bool
	}{
		{name: "exact match", namespace: "task:run", pattern: "task:run", expected: true},
		{name: "wildcard all", namespace: "task:run", pattern: "*", expected: true},
		{name: "prefix wildcard", namespace: "task:run", pattern: "task:*", expected: true},
		{name: "prefix wildcard other package", namespace: "cli:tree", pattern: "task:*", expected: false},
		{name: "no match", namespace: "task:run", pattern: "cli:tree", expected: false},
		{name: "partial name is not a match", namespace: "task:run", pattern: "task", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matches(tt.namespace, tt.pattern))
		})
	}
}

func TestNewRespectsDebugEnv(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		assert.False(t, New("task:run").Enabled())
	})

	t.Run("enabled by namespace list", func(t *testing.T) {
		t.Setenv("DEBUG", "cli:tree, task:run")
		assert.True(t, New("task:run").Enabled())
		assert.True(t, New("cli:tree").Enabled())
		assert.False(t, New("cli:command").Enabled())
	})

	t.Run("enabled by wildcard", func(t *testing.T) {
		t.Setenv("DEBUG", "task:*")
		assert.True(t, New("task:pipeline").Enabled())
		assert.False(t, New("cli:tree").Enabled())
	})
}

func TestDisabledLoggerDoesNotPanic(t *testing.T) {
	t.Setenv("DEBUG", "")
	log := New("task:test")
	log.Print("ignored")
	log.Printf("ignored %d", 42)
}
