package rules

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// CheckJSONSchema parses dataPath as JSON and, when schemaPath is given,
// validates the document against that JSON Schema. Only the first
// violation is reported, as message plus (when the violation is below the
// root) a second line carrying the dotted path to the offending field.
// With an empty schemaPath this degrades to a syntax-only check.
func CheckJSONSchema(dataPath, schemaPath string) []string {
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		return []string{fmt.Sprintf("Error reading %s: %v", dataPath, err)}
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return []string{fmt.Sprintf("JSON syntax error in %s: %s", dataPath, jsonErrorDetail(raw, err))}
	}

	if schemaPath == "" {
		return nil
	}

	schemaRaw, err := os.ReadFile(schemaPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{fmt.Sprintf("Schema file not found: %s", schemaPath)}
		}
		return []string{fmt.Sprintf("Error reading %s: %v", schemaPath, err)}
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(schemaRaw)); err != nil {
		return []string{fmt.Sprintf("%s: invalid schema: %v", schemaPath, err)}
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return []string{fmt.Sprintf("%s: invalid schema: %v", schemaPath, err)}
	}

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return []string{fmt.Sprintf("%s: schema validation error: %v", dataPath, err)}
		}

		leaf := firstLeaf(ve)
		errs := []string{fmt.Sprintf("%s: schema validation error: %s", dataPath, leaf.Message)}
		if p := dottedPath(leaf.InstanceLocation); p != "" {
			errs = append(errs, fmt.Sprintf("  Path: %s", p))
		}
		return errs
	}

	return nil
}

// firstLeaf descends the cause tree to the first concrete violation.
func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

// dottedPath converts a JSON Pointer instance location ("/a/b/0") to the
// dotted form ("a.b.0"). The root pointer yields the empty string.
func dottedPath(pointer string) string {
	trimmed := strings.TrimPrefix(pointer, "/")
	if trimmed == "" {
		return ""
	}
	segments := strings.Split(trimmed, "/")
	for i, s := range segments {
		s = strings.ReplaceAll(s, "~1", "/")
		segments[i] = strings.ReplaceAll(s, "~0", "~")
	}
	return strings.Join(segments, ".")
}
