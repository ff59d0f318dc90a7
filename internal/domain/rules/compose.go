package rules

import (
	"fmt"
	"sort"
)

// CheckDockerCompose validates the structure of a Docker Compose file.
// The `version` key is optional: both v1-style files with a version and
// v2-style files without one are accepted as long as `services` exists.
// Per-service problems accumulate; they do not stop the scan of the
// remaining services.
func CheckDockerCompose(path string) []string {
	root, errs := loadYAMLMapping(path)
	if errs != nil {
		return errs
	}

	services, present := root["services"]
	if !present {
		return []string{fmt.Sprintf("%s: missing 'services' key", path)}
	}

	serviceMap, ok := services.(map[string]any)
	if !ok {
		return []string{fmt.Sprintf("%s: 'services' must be a mapping", path)}
	}

	names := make([]string, 0, len(serviceMap))
	for name := range serviceMap {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		svc, ok := serviceMap[name].(map[string]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("%s: service '%s' must be a mapping", path, name))
			continue
		}

		_, hasImage := svc["image"]
		_, hasBuild := svc["build"]
		if !hasImage && !hasBuild {
			errs = append(errs, fmt.Sprintf("%s: service '%s' must have either 'image' or 'build'", path, name))
		}
	}

	return errs
}
