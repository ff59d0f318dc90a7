// Package rules holds the pure validation rules applied to configuration
// files. Every rule is a function from file path(s) to a list of
// human-readable error strings; a file is valid iff the list is empty.
// Rules keep no state and share nothing, so callers are free to run them
// in any order or in parallel.
package rules

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CheckYAMLSyntax attempts a full parse of the file as YAML. Syntax
// checking is all-or-nothing: a file either parses completely or fails
// with a single error.
func CheckYAMLSyntax(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Error reading %s: %v", path, err)}
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("YAML syntax error in %s: %v", path, err)}
	}
	return nil
}

// CheckJSONSyntax attempts a full parse of the file as JSON, reporting
// the line and column of the first offending token when the decoder
// exposes an offset.
func CheckJSONSyntax(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Error reading %s: %v", path, err)}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("JSON syntax error in %s: %s", path, jsonErrorDetail(data, err))}
	}
	return nil
}

// jsonErrorDetail augments a decoder error with line/column information
// when the error carries a byte offset.
func jsonErrorDetail(data []byte, err error) string {
	var offset int64 = -1
	switch e := err.(type) {
	case *json.SyntaxError:
		offset = e.Offset
	case *json.UnmarshalTypeError:
		offset = e.Offset
	}
	if offset < 0 || offset > int64(len(data)) {
		return err.Error()
	}

	line, col := 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return fmt.Sprintf("%v (line %d, column %d)", err, line, col)
}

// loadYAMLMapping parses the file and requires a mapping at the root.
// On success it returns the mapping and nil errors; otherwise it returns
// the errors the caller should report, with further checks aborted.
func loadYAMLMapping(path string) (map[string]any, []string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []string{fmt.Sprintf("Error reading %s: %v", path, err)}
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, []string{fmt.Sprintf("YAML error in %s: %v", path, err)}
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil, []string{fmt.Sprintf("%s: root must be a mapping", path)}
	}
	return root, nil
}
