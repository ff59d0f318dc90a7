package detector

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conflint/conflint/internal/domain"
)

// FileTypeDetector implements domain.TypeDetector. Filename conventions
// are a stronger, cheaper signal than content for most ecosystems, so the
// decision order runs extension and name checks first and reserves content
// sniffing for ambiguous generic YAML.
type FileTypeDetector struct{}

func New() *FileTypeDetector {
	return &FileTypeDetector{}
}

// extensionTypes maps non-config extensions to their recognized-but-
// skipped types. Checked before any config signal.
var extensionTypes = []struct {
	suffix   string
	fileType domain.FileType
}{
	{".md", domain.TypeMarkdown},
	{".markdown", domain.TypeMarkdown},
	{".txt", domain.TypeText},
	{".log", domain.TypeText},
	{".py", domain.TypePython},
	{".pyc", domain.TypePython},
	{".sh", domain.TypeShell},
	{".bash", domain.TypeShell},
}

// Detect resolves the file type for a path. First match wins. Detection
// never fails loudly: unreadable or unparsable YAML content falls back to
// the generic yaml type and the syntax check surfaces the problem later.
func (d *FileTypeDetector) Detect(path string) domain.FileType {
	name := strings.ToLower(filepath.Base(path))

	for _, e := range extensionTypes {
		if strings.HasSuffix(name, e.suffix) {
			return e.fileType
		}
	}

	switch {
	case strings.Contains(name, "docker-compose"), name == "compose.yml", name == "compose.yaml":
		return domain.TypeCompose
	case strings.HasSuffix(name, ".tf"), strings.HasSuffix(name, ".tf.json"):
		return domain.TypeTerraform
	case strings.Contains(name, "k8s"), strings.Contains(name, "kubernetes"),
		filepath.Base(filepath.Dir(path)) == "k8s":
		return domain.TypeKubernetes
	case strings.HasSuffix(name, ".json"):
		return domain.TypeJSON
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		return sniffYAML(path)
	}

	return domain.TypeUnknown
}

// sniffYAML disambiguates generic YAML by a best-effort content peek:
// a mapping with both apiVersion and kind is a Kubernetes manifest, one
// with services or version is a Compose file, anything else stays yaml.
func sniffYAML(path string) domain.FileType {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.TypeYAML
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil || doc == nil {
		return domain.TypeYAML
	}

	_, hasAPIVersion := doc["apiVersion"]
	_, hasKind := doc["kind"]
	if hasAPIVersion && hasKind {
		return domain.TypeKubernetes
	}

	_, hasServices := doc["services"]
	_, hasVersion := doc["version"]
	if hasServices || hasVersion {
		return domain.TypeCompose
	}

	return domain.TypeYAML
}
