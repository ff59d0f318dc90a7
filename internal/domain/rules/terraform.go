package rules

import (
	"fmt"
	"os"
	"strings"
)

// terraformKeywords are the block keywords whose presence marks a file as
// containing Terraform configuration. The search is a raw substring scan,
// not tokenized: a keyword inside a string or comment still counts.
var terraformKeywords = []string{
	"resource", "data", "variable", "output", "provider", "module", "terraform",
}

// CheckTerraform applies textual heuristics to raw Terraform HCL. It is
// deliberately not an HCL parser: it checks brace and bracket balance by
// count and requires at least one recognizable block keyword. All three
// checks always run; their findings are merged.
func CheckTerraform(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Error reading %s: %v", path, err)}
	}
	content := string(data)

	var errs []string

	openBraces := strings.Count(content, "{")
	closeBraces := strings.Count(content, "}")
	if openBraces != closeBraces {
		errs = append(errs, fmt.Sprintf("%s: unbalanced braces ({: %d, }: %d)", path, openBraces, closeBraces))
	}

	openBrackets := strings.Count(content, "[")
	closeBrackets := strings.Count(content, "]")
	if openBrackets != closeBrackets {
		errs = append(errs, fmt.Sprintf("%s: unbalanced brackets ([: %d, ]: %d)", path, openBrackets, closeBrackets))
	}

	if !containsAnyKeyword(content) {
		errs = append(errs, fmt.Sprintf(
			"%s: no Terraform blocks found (resource, data, variable, output, provider, module, or terraform)", path))
	}

	return errs
}

func containsAnyKeyword(content string) bool {
	for _, kw := range terraformKeywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return false
}
