package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"verdict.dev/pkg/verdict/internal/adapter"
	"verdict.dev/pkg/verdict/internal/controller"
	"verdict.dev/pkg/verdict/internal/domain"
	m "verdict.dev/pkg/verdict/internal/model"
)

var viewFormatFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "View a previously written test report",
		Long: `View a test report written by "verdict run". Without an argument the
default report in the output directory is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := controller.ParseReportFormat(viewFormatFlag)
			if err != nil {
				return err
			}

			report := adapter.ReportPath(
				m.Path(viper.GetString(outputFlagName)),
				viper.GetString(runNameConfigKey),
				false,
				time.Time{},
			)
			if len(args) == 1 {
				report = m.Path(args[0])
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Report: report, Format: format})
		},
	}

	cmd.Flags().StringVarP(&viewFormatFlag, "format", "f", string(controller.FormatTable), "output format: table, json or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
