package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// parseValue interprets input as JSON, falling back to a plain string
func parseValue(input string) any {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return input
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return input
	}
	return value
}

// formatValue renders strings bare and everything else as indented JSON
func formatValue(value any, indent int) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(value); err != nil {
		return "", fmt.Errorf("failed to format value: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// describeType names the JSON type of a decoded value
func describeType(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
