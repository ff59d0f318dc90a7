package application

import (
	"fmt"
	"os"

	"github.com/conflint/conflint/internal/domain"
	"github.com/conflint/conflint/internal/domain/rules"
)

// ValidateService orchestrates the layered validation of config files:
// type detection, then the syntax stage, then the structural stage, with
// errors aggregated per file and per directory.
type ValidateService struct {
	scanner      domain.ConfigScanner
	detector     domain.TypeDetector
	configLoader domain.ConfigLoader
}

// NewValidateService creates a ValidateService with all required dependencies.
func NewValidateService(
	scanner domain.ConfigScanner,
	detector domain.TypeDetector,
	configLoader domain.ConfigLoader,
) *ValidateService {
	return &ValidateService{
		scanner:      scanner,
		detector:     detector,
		configLoader: configLoader,
	}
}

// ValidateFile validates a single file. A non-empty hint overrides type
// detection. Non-config types pass trivially with no checks run; a failed
// syntax stage returns immediately so structural checks never see
// syntactically invalid input.
func (s *ValidateService) ValidateFile(path string, hint domain.FileType) domain.FileResult {
	if _, err := os.Stat(path); err != nil {
		return domain.FileResult{
			Path:   path,
			Type:   domain.TypeUnknown,
			Errors: []string{fmt.Sprintf("File not found: %s", path)},
		}
	}

	fileType := hint
	if fileType == "" {
		fileType = s.detector.Detect(path)
	}

	pipeline := rules.For(fileType)

	var errs []string
	if pipeline.Syntax != nil {
		if errs = pipeline.Syntax(path); len(errs) > 0 {
			return domain.FileResult{Path: path, Type: fileType, Errors: errs}
		}
	}

	if pipeline.Structural != nil {
		errs = append(errs, pipeline.Structural(path)...)
	}

	return domain.FileResult{
		Path:   path,
		Type:   fileType,
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// ValidateDirectory validates every matching file under dir, recursively.
// Every visited file is recorded in the report's type map; only invalid
// config files contribute to the aggregate error list.
func (s *ValidateService) ValidateDirectory(dir string) (*domain.Report, error) {
	return s.ValidateDirectoryFiltered(dir, nil)
}

// ValidateDirectoryFiltered is ValidateDirectory restricted to files for
// which keep returns true. A nil keep admits everything.
func (s *ValidateService) ValidateDirectoryFiltered(dir string, keep func(path string) bool) (*domain.Report, error) {
	cfg, err := s.configLoader.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	files, err := s.scanner.Scan(dir, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	report := domain.NewReport()
	for _, f := range files {
		if keep != nil && !keep(f) {
			continue
		}
		report.AddFile(s.ValidateFile(f, ""))
	}

	return report, nil
}

// ValidateSchema parses path as JSON and validates it against the JSON
// Schema at schemaPath. It replaces the generic json pipeline when a
// schema is supplied.
func (s *ValidateService) ValidateSchema(path, schemaPath string) domain.FileResult {
	if _, err := os.Stat(path); err != nil {
		return domain.FileResult{
			Path:   path,
			Type:   domain.TypeUnknown,
			Errors: []string{fmt.Sprintf("File not found: %s", path)},
		}
	}

	errs := rules.CheckJSONSchema(path, schemaPath)
	return domain.FileResult{
		Path:   path,
		Type:   domain.TypeJSON,
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
