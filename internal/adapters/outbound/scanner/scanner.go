package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/conflint/conflint/internal/domain"
)

// skipDirs are never descended into during a scan.
var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"bin":          true,
	"testdata":     true,
}

// FileScanner implements domain.ConfigScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan returns every file under root whose name matches one of the
// configured patterns. A single walk matches each file against the
// pattern set once, so no file is ever listed twice even when it matches
// several patterns, and WalkDir's lexical order makes the result
// deterministic.
func (s *FileScanner) Scan(root string, cfg domain.RunConfig) ([]string, error) {
	patterns := cfg.EffectivePatterns()

	extraSkip := make(map[string]bool, len(cfg.ExcludePaths))
	for _, p := range cfg.ExcludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || extraSkip[d.Name()]) {
				return filepath.SkipDir
			}
			return nil
		}

		for _, pattern := range patterns {
			ok, matchErr := filepath.Match(pattern, d.Name())
			if matchErr != nil {
				return matchErr
			}
			if ok {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
