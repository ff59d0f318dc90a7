package rules

import (
	"fmt"
	"strings"
)

var kubernetesRequiredFields = []string{"apiVersion", "kind", "metadata"}

// CheckKubernetesManifest validates the top-level shape of a Kubernetes
// manifest. Required-field checks are independent: every missing field is
// reported, not just the first.
func CheckKubernetesManifest(path string) []string {
	root, errs := loadYAMLMapping(path)
	if errs != nil {
		return errs
	}

	for _, field := range kubernetesRequiredFields {
		if _, ok := root[field]; !ok {
			errs = append(errs, fmt.Sprintf("%s: missing required field '%s'", path, field))
		}
	}

	if metadata, ok := root["metadata"]; ok {
		metaMap, isMap := metadata.(map[string]any)
		switch {
		case !isMap:
			errs = append(errs, fmt.Sprintf("%s: 'metadata' must be a mapping", path))
		default:
			if _, ok := metaMap["name"]; !ok {
				errs = append(errs, fmt.Sprintf("%s: 'metadata.name' is required", path))
			}
		}
	}

	if apiVersion, ok := root["apiVersion"]; ok && !validAPIVersion(apiVersion) {
		errs = append(errs, fmt.Sprintf("%s: 'apiVersion' should follow format 'group/version' or 'v1'", path))
	}

	return errs
}

// validAPIVersion accepts the literal "v1" or any group/version string
// containing a slash. A non-string apiVersion fails here too.
func validAPIVersion(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return s == "v1" || strings.Contains(s, "/")
}
