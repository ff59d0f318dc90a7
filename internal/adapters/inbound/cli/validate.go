package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conflint/conflint/internal/adapters/outbound/config"
	"github.com/conflint/conflint/internal/adapters/outbound/detector"
	"github.com/conflint/conflint/internal/adapters/outbound/gitinfo"
	"github.com/conflint/conflint/internal/adapters/outbound/scanner"
	"github.com/conflint/conflint/internal/adapters/outbound/tui"
	"github.com/conflint/conflint/internal/application"
	"github.com/conflint/conflint/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		typeFlag    string
		schemaPath  string
		jsonOutput  bool
		changedOnly bool
	)

	cmd := &cobra.Command{
		Use:   "validate <path> [path...]",
		Short: "Validate configuration files or directory trees",
		Long:  "Detect the type of each file, run the matching syntax and structural checks, and report aggregate results. Directories are scanned recursively; non-config files are recognized and skipped.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hint, err := domain.ParseFileType(typeFlag)
			if err != nil {
				return err
			}
			svc := application.NewValidateService(scanner.New(), detector.New(), config.New())

			var keep func(string) bool
			if changedOnly {
				keep, err = changedFilter(args)
				if err != nil {
					return err
				}
			}

			report := domain.NewReport()
			for _, path := range args {
				info, err := os.Stat(path)
				if err != nil {
					report.AddError(fmt.Sprintf("Path not found: %s", path))
					continue
				}

				if info.IsDir() {
					sub, err := svc.ValidateDirectoryFiltered(path, keep)
					if err != nil {
						return fmt.Errorf("validating %s: %w", path, err)
					}
					report.Merge(sub)
					continue
				}

				// Schema validation replaces the generic json pipeline,
				// and only when the type is forced to json.
				if schemaPath != "" && hint == domain.TypeJSON {
					report.AddFile(svc.ValidateSchema(path, schemaPath))
					continue
				}
				report.AddFile(svc.ValidateFile(path, hint))
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else if report.Valid {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			} else {
				fmt.Fprint(cmd.ErrOrStderr(), tui.RenderFailures(report))
			}

			if !report.Valid {
				return fmt.Errorf("validation failed: %d error(s)", len(report.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "auto", "File type: yaml, json, docker-compose, kubernetes, terraform, or auto")
	cmd.Flags().StringVar(&schemaPath, "schema", "", "JSON Schema file for JSON validation (requires --type json)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&changedOnly, "changed", false, "In directories, validate only files modified in the git working tree")

	return cmd
}

// changedFilter builds a keep-func admitting only files reported as
// changed by the git worktree enclosing the first path argument.
func changedFilter(args []string) (func(string) bool, error) {
	anchor := "."
	if len(args) > 0 {
		anchor = args[0]
	}

	var git domain.RepoInfo = gitinfo.New()
	if !git.IsRepo(anchor) {
		return nil, fmt.Errorf("--changed requires a git working tree (none found from %s)", anchor)
	}

	changed, err := git.ChangedFiles(anchor)
	if err != nil {
		return nil, fmt.Errorf("listing changed files: %w", err)
	}

	set := make(map[string]bool, len(changed))
	for _, f := range changed {
		set[f] = true
	}

	return func(path string) bool {
		abs, err := filepath.Abs(path)
		if err != nil {
			return false
		}
		return set[abs]
	}, nil
}
