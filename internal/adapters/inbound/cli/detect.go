package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conflint/conflint/internal/adapters/outbound/detector"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <path> [path...]",
		Short: "Print the detected file type for each path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			det := detector.New()
			for _, path := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, det.Detect(path))
			}
			return nil
		},
	}
}
