package env

import (
	"bufio"
	"fmt"
	"strings"
)

// parseDotEnv parses .env text into key/value pairs.
// Supports: KEY=value, KEY="quoted value", KEY='single quoted', # comments,
// and an optional leading "export ". Every value is a string.
func parseDotEnv(text string) (map[string]any, error) {
	result := make(map[string]any)
	scanner := bufio.NewScanner(strings.NewReader(text))

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, &lineError{line: lineNo, err: fmt.Errorf("expected KEY=value, got %q", line)}
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if key == "" {
			return nil, &lineError{line: lineNo, err: fmt.Errorf("missing key before '='")}
		}

		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		result[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file: %w", err)
	}

	return result, nil
}
