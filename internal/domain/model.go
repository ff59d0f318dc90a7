package domain

// FileResult is the outcome of validating a single file.
// Valid is true iff Errors is empty.
type FileResult struct {
	Path   string   `json:"path"`
	Type   FileType `json:"type"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Skipped reports whether the file was excluded from validation because
// its type is non-config.
func (r FileResult) Skipped() bool {
	return !r.Type.IsConfig()
}

// Report aggregates results over many files. Errors holds every error
// contributed by invalid config files, in visit order; FileTypes records
// the detected type for every file visited, config or not.
type Report struct {
	Valid     bool                `json:"valid"`
	Errors    []string            `json:"errors,omitempty"`
	Files     []FileResult        `json:"files"`
	FileTypes map[string]FileType `json:"file_types"`
}

func NewReport() *Report {
	return &Report{
		Valid:     true,
		FileTypes: make(map[string]FileType),
	}
}

// AddFile records a per-file result. Errors from non-config files never
// reach the aggregate list.
func (r *Report) AddFile(f FileResult) {
	r.Files = append(r.Files, f)
	r.FileTypes[f.Path] = f.Type
	if !f.Valid && f.Type.IsConfig() {
		r.Errors = append(r.Errors, f.Errors...)
	}
	r.Valid = len(r.Errors) == 0
}

// AddError records an error not attributable to a visited file, such as a
// missing path argument.
func (r *Report) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Valid = false
}

// Merge appends another report's files, re-applying the aggregation rules.
func (r *Report) Merge(other *Report) {
	for _, f := range other.Files {
		r.AddFile(f)
	}
}

// ConfigFiles returns the visited files that were subject to validation.
func (r *Report) ConfigFiles() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if !f.Skipped() {
			out = append(out, f)
		}
	}
	return out
}

// SkippedFiles returns the visited non-config files.
func (r *Report) SkippedFiles() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Skipped() {
			out = append(out, f)
		}
	}
	return out
}
