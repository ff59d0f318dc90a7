package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/conflint/conflint/internal/adapters/outbound/config"
	"github.com/conflint/conflint/internal/adapters/outbound/detector"
	"github.com/conflint/conflint/internal/adapters/outbound/scanner"
	"github.com/conflint/conflint/internal/application"
	"github.com/conflint/conflint/internal/domain"
)

func newService() *application.ValidateService {
	return application.NewValidateService(scanner.New(), detector.New(), appconfig.New())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateFile_NotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")
	result := newService().ValidateFile(missing, "")

	assert.False(t, result.Valid)
	assert.Equal(t, domain.TypeUnknown, result.Type)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "File not found: "+missing, result.Errors[0])
}

func TestValidateFile_NonConfigTypesPassWithoutChecks(t *testing.T) {
	dir := t.TempDir()
	// Content is irrelevant for non-config types; even broken YAML-ish
	// text passes because no checks run.
	path := writeFile(t, dir, "notes.md", "::: not yaml {{{\n")

	result := newService().ValidateFile(path, "")
	assert.True(t, result.Valid)
	assert.Equal(t, domain.TypeMarkdown, result.Type)
	assert.Empty(t, result.Errors)
}

func TestValidateFile_SyntaxFailureShortCircuitsStructural(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "docker-compose.yml", "services:\n\tweb: tab-indent\n")

	result := newService().ValidateFile(path, "")
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1, "structural checks must not run on unparsable input")
	assert.Contains(t, result.Errors[0], "YAML syntax error in")
}

func TestValidateFile_StructuralErrorsMerged(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "docker-compose.yml", "services:\n  web:\n    ports:\n      - \"80:80\"\n")

	result := newService().ValidateFile(path, "")
	assert.False(t, result.Valid)
	assert.Equal(t, domain.TypeCompose, result.Type)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "service 'web' must have either 'image' or 'build'")
}

func TestValidateFile_HintOverridesDetection(t *testing.T) {
	dir := t.TempDir()
	// Detected as plain yaml, forced to kubernetes by hint.
	path := writeFile(t, dir, "app.yaml", "foo: bar\n")

	result := newService().ValidateFile(path, domain.TypeKubernetes)
	assert.Equal(t, domain.TypeKubernetes, result.Type)
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 3, "apiVersion, kind, and metadata all missing")
}

func TestValidateFile_TerraformHasNoSyntaxStage(t *testing.T) {
	dir := t.TempDir()
	// Not valid YAML or JSON, but balanced and contains a keyword.
	path := writeFile(t, dir, "main.tf", "resource \"x\" \"y\" {\n  a = [1]\n}\n")

	result := newService().ValidateFile(path, "")
	assert.True(t, result.Valid)
	assert.Equal(t, domain.TypeTerraform, result.Type)
}

func TestValidateFile_UnknownTypePassesTrivially(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Makefile", "all:\n\techo hi\n")

	result := newService().ValidateFile(path, "")
	assert.True(t, result.Valid)
	assert.Equal(t, domain.TypeUnknown, result.Type)
}

func TestValidateDirectory_AggregatesAndRecordsTypes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docker-compose.yml", "services:\n  web:\n    image: nginx\n")
	writeFile(t, dir, "k8s/pod.yaml", "apiVersion: v1\nkind: Pod\nmetadata:\n  name: p\n")
	badJSON := writeFile(t, dir, "cfg.json", "{broken")
	writeFile(t, dir, "values.yaml", "a: 1\n")

	report, err := newService().ValidateDirectory(dir)
	require.NoError(t, err)

	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "JSON syntax error in "+badJSON)

	assert.Len(t, report.FileTypes, 4)
	assert.Equal(t, domain.TypeCompose, report.FileTypes[filepath.Join(dir, "docker-compose.yml")])
	assert.Equal(t, domain.TypeKubernetes, report.FileTypes[filepath.Join(dir, "k8s", "pod.yaml")])
	assert.Equal(t, domain.TypeJSON, report.FileTypes[badJSON])
	assert.Equal(t, domain.TypeYAML, report.FileTypes[filepath.Join(dir, "values.yaml")])
}

func TestValidateDirectory_RespectsProjectConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.ConfigFileName, "patterns:\n  - \"*.tf\"\n")
	writeFile(t, dir, "main.tf", "provider \"x\" {}\n")
	writeFile(t, dir, "ignored.json", "{broken")

	report, err := newService().ValidateDirectory(dir)
	require.NoError(t, err)

	assert.True(t, report.Valid)
	assert.Len(t, report.FileTypes, 1)
}

func TestValidateDirectoryFiltered(t *testing.T) {
	dir := t.TempDir()
	keepPath := writeFile(t, dir, "a.yaml", "a: 1\n")
	writeFile(t, dir, "b.yaml", "broken: [\n")

	report, err := newService().ValidateDirectoryFiltered(dir, func(path string) bool {
		return path == keepPath
	})
	require.NoError(t, err)

	assert.True(t, report.Valid)
	assert.Len(t, report.Files, 1)
}

func TestValidateSchema(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", `{"type": "object", "required": ["name"]}`)
	good := writeFile(t, dir, "good.json", `{"name": "x"}`)
	bad := writeFile(t, dir, "bad.json", `{}`)

	result := newService().ValidateSchema(good, schema)
	assert.True(t, result.Valid)
	assert.Equal(t, domain.TypeJSON, result.Type)

	result = newService().ValidateSchema(bad, schema)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "schema validation error")
}

func TestValidateSchema_DataFileNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.json")
	result := newService().ValidateSchema(missing, "")
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"File not found: " + missing}, result.Errors)
}
