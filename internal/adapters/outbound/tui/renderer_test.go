package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conflint/conflint/internal/adapters/outbound/tui"
	"github.com/conflint/conflint/internal/domain"
)

func sampleReport() *domain.Report {
	r := domain.NewReport()
	r.AddFile(domain.FileResult{Path: "docker-compose.yml", Type: domain.TypeCompose, Valid: true})
	r.AddFile(domain.FileResult{Path: "main.tf", Type: domain.TypeTerraform, Valid: true})
	r.AddFile(domain.FileResult{Path: "README.md", Type: domain.TypeMarkdown, Valid: true})
	return r
}

func TestRenderReport_PassSummary(t *testing.T) {
	out := tui.RenderReport(sampleReport())

	assert.Contains(t, out, "Validation passed! Checked 2 config file(s).")
	assert.Contains(t, out, "[OK] docker-compose.yml (docker-compose)")
	assert.Contains(t, out, "[OK] main.tf (terraform)")
	assert.Contains(t, out, "Skipped 1 non-config file(s):")
	assert.Contains(t, out, "[SKIP] README.md (markdown)")
}

func TestRenderReport_NoConfigFiles(t *testing.T) {
	r := domain.NewReport()
	r.AddFile(domain.FileResult{Path: "README.md", Type: domain.TypeMarkdown, Valid: true})

	out := tui.RenderReport(r)
	assert.Contains(t, out, "No config files to validate. Checked 1 file(s).")
	assert.Contains(t, out, "[SKIP] README.md")
}

func TestRenderFailures_ErrorPrefixPerEntry(t *testing.T) {
	r := domain.NewReport()
	r.AddFile(domain.FileResult{
		Path:   "bad.yaml",
		Type:   domain.TypeKubernetes,
		Errors: []string{"bad.yaml: missing required field 'apiVersion'", "bad.yaml: 'metadata.name' is required"},
	})

	out := tui.RenderFailures(r)
	assert.Contains(t, out, "Validation failed!")
	assert.Contains(t, out, "ERROR: bad.yaml: missing required field 'apiVersion'")
	assert.Contains(t, out, "ERROR: bad.yaml: 'metadata.name' is required")
}
