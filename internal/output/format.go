// Package output defines the serialization contract of an analysis run:
// the report schema and the YAML/JSON renderers.
package output

import (
	"fmt"
	"strings"
)

// Format represents the output format type.
type Format string

const (
	// FormatYAML is the default self-documenting YAML output.
	FormatYAML Format = "yaml"

	// FormatJSON is the JSON output format.
	FormatJSON Format = "json"
)

// DefaultFormat is used when no format is specified.
const DefaultFormat = FormatYAML

// ParseFormat parses a format string into a Format value.
// Accepts "yaml" and "json", case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format: %q (expected yaml or json)", s)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// ValidateFormat checks if a format value is valid.
func ValidateFormat(f Format) bool {
	switch f {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}
