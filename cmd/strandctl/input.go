package main

import (
	"fmt"
	"io"
	"strings"
)

// readInput resolves the text a subcommand operates on: the --input flag
// when given, otherwise all of stdin with one trailing newline trimmed.
func readInput(flagValue string, stdin io.Reader) ([]byte, error) {
	if flagValue != "" {
		return []byte(flagValue), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")
	return []byte(text), nil
}

// parseParams turns "k=v,k2=v2" into operation parameters.
func parseParams(spec string) (map[string]interface{}, error) {
	if spec == "" {
		return nil, nil
	}
	params := make(map[string]interface{})
	for _, pair := range strings.Split(spec, ",") {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, want k=v", pair)
		}
		params[key] = value
	}
	return params, nil
}
