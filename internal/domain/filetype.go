package domain

import "fmt"

// FileType is the semantic type of a file, detected from its name,
// extension, and content.
type FileType string

const (
	TypeYAML       FileType = "yaml"
	TypeJSON       FileType = "json"
	TypeCompose    FileType = "docker-compose"
	TypeKubernetes FileType = "kubernetes"
	TypeTerraform  FileType = "terraform"
	TypeMarkdown   FileType = "markdown"
	TypeText       FileType = "text"
	TypePython     FileType = "python"
	TypeShell      FileType = "shell"
	TypeUnknown    FileType = "unknown"
)

// ValidFileTypes is every type detection can produce.
var ValidFileTypes = []FileType{
	TypeYAML,
	TypeJSON,
	TypeCompose,
	TypeKubernetes,
	TypeTerraform,
	TypeMarkdown,
	TypeText,
	TypePython,
	TypeShell,
	TypeUnknown,
}

// HintTypes are the types a user may force instead of auto-detection.
var HintTypes = []FileType{
	TypeYAML,
	TypeJSON,
	TypeCompose,
	TypeKubernetes,
	TypeTerraform,
}

// IsConfig reports whether files of this type are subject to validation.
// Recognized non-config source and documentation types are skipped;
// unknown files stay in scope and validate trivially.
func (t FileType) IsConfig() bool {
	switch t {
	case TypeMarkdown, TypeText, TypePython, TypeShell:
		return false
	}
	return true
}

// ParseFileType parses a user-supplied type hint. Empty and "auto" mean
// no hint; anything else must be one of HintTypes.
func ParseFileType(s string) (FileType, error) {
	if s == "" || s == "auto" {
		return "", nil
	}
	for _, t := range HintTypes {
		if FileType(s) == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("unsupported file type %q (valid: yaml, json, docker-compose, kubernetes, terraform)", s)
}
