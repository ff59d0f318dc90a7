package domain

// TypeDetector maps a file path (and, for ambiguous YAML, a peek at its
// content) to a FileType. Detection never fails: unreadable or unparsable
// content falls back to a generic type and a later check surfaces the error.
type TypeDetector interface {
	Detect(path string) FileType
}

// ConfigScanner enumerates config-file candidates under a directory. Each
// matching file appears exactly once, in deterministic traversal order.
type ConfigScanner interface {
	Scan(root string, cfg RunConfig) ([]string, error)
}

// ConfigLoader loads the run configuration for a directory.
type ConfigLoader interface {
	Load(dir string) (RunConfig, error)
}

// RepoInfo exposes git metadata for a path inside a working tree.
type RepoInfo interface {
	IsRepo(path string) bool
	CommitHash(path string) (string, error)
	ChangedFiles(path string) ([]string, error)
}
