package rules

import "github.com/conflint/conflint/internal/domain"

// CheckFunc is a single validation stage over one file.
type CheckFunc func(path string) []string

// Pipeline pairs the optional syntax and structural stages for one file
// type. A failed syntax stage short-circuits the structural stage.
type Pipeline struct {
	Syntax     CheckFunc
	Structural CheckFunc
}

// pipelines is the exhaustive dispatch table from file type to its
// validation stages. Non-config types and unknown carry no stages and so
// validate trivially; Terraform has no syntax stage because its checks
// operate on raw text.
var pipelines = map[domain.FileType]Pipeline{
	domain.TypeYAML:       {Syntax: CheckYAMLSyntax},
	domain.TypeJSON:       {Syntax: CheckJSONSyntax},
	domain.TypeCompose:    {Syntax: CheckYAMLSyntax, Structural: CheckDockerCompose},
	domain.TypeKubernetes: {Syntax: CheckYAMLSyntax, Structural: CheckKubernetesManifest},
	domain.TypeTerraform:  {Structural: CheckTerraform},
	domain.TypeMarkdown:   {},
	domain.TypeText:       {},
	domain.TypePython:     {},
	domain.TypeShell:      {},
	domain.TypeUnknown:    {},
}

// For returns the pipeline for a file type. Types outside the table get
// the empty pipeline.
func For(t domain.FileType) Pipeline {
	return pipelines[t]
}
