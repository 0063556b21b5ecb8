package cmd

import (
	"github.com/spf13/cobra"

	"verdict.dev/pkg/verdict/internal/domain"
	m "verdict.dev/pkg/verdict/internal/model"
)

// compareCmd represents the compare command.
var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <baseline> <candidate>",
		Short: "Compare two test reports",
		Long: `Compare a candidate report against a baseline report and list the test
cases that started failing, the ones that were fixed and the ones that
disappeared. The detection score is the share of baseline-passing cases
that fail in the candidate.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Compare(cmd.Context(), domain.CompareArgs{
				Baseline:  m.Path(args[0]),
				Candidate: m.Path(args[1]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
