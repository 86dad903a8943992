package task

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/taskpipe/taskpipe/pkg/logger"
)

var statefileLog = logger.New("task:statefile")

// LoadFields reads a state file into a Fields bag suitable for merging into
// a task. The format is chosen by extension: .yaml/.yml/.json parse as YAML
// (JSON is a YAML subset), .toml parses as TOML.
func LoadFields(path string) (Fields, error) {
	ext := strings.ToLower(filepath.Ext(path))
	statefileLog.Printf("loading state file %s (format %s)", path, ext)

	var fields Fields
	switch ext {
	case ".yaml", ".yml", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read state file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("failed to parse state file %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &fields); err != nil {
			return nil, fmt.Errorf("failed to parse state file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported state file extension %q (expected .yaml, .yml, .json or .toml)", ext)
	}

	for name, value := range fields {
		fields[name] = normalizeValue(value)
	}
	return fields, nil
}

// normalizeValue folds the decoder-specific integer types (int64 from TOML,
// uint64 from YAML) into plain int where they fit, so typed field setters
// only need to handle one integer kind.
func normalizeValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		for name, nested := range value {
			value[name] = normalizeValue(nested)
		}
		return value
	case []any:
		for i := range value {
			value[i] = normalizeValue(value[i])
		}
		return value
	case int64:
		if value >= math.MinInt && value <= math.MaxInt {
			return int(value)
		}
		return value
	case uint64:
		if value <= math.MaxInt {
			return int(value)
		}
		return value
	}
	return v
}
