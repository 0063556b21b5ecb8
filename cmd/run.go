package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"verdict.dev/pkg/verdict/internal/domain"
	m "verdict.dev/pkg/verdict/internal/model"
)

var runNameFlag string
var runTimestampSuffixFlag bool
var runTimeoutFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <suite>...",
		Short: "Run test suites and write a report",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Usage()
			}

			return workflow.Test(cmd.Context(), domain.TestArgs{
				Suites:          args,
				Output:          m.Path(viper.GetString(outputFlagName)),
				Name:            viper.GetString(runNameConfigKey),
				TimestampSuffix: viper.GetBool(timestampSuffixConfigKey),
				Timeout:         viper.GetDuration(runTimeoutConfigKey),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runNameFlag, runNameFlagName, "n", viper.GetString(runNameConfigKey), "base name of the report file")
	bindFlagToConfig(cmd.Flags().Lookup(runNameFlagName), runNameConfigKey)

	cmd.Flags().BoolVar(&runTimestampSuffixFlag, timestampSuffixFlagName, viper.GetBool(timestampSuffixConfigKey), "append a timestamp to the report file name")
	bindFlagToConfig(cmd.Flags().Lookup(timestampSuffixFlagName), timestampSuffixConfigKey)

	cmd.Flags().StringVarP(&runTimeoutFlag, runTimeoutFlagName, "t", viper.GetString(runTimeoutConfigKey), "abort the run after this duration (e.g. 10m, 0 disables)")
	bindFlagToConfig(cmd.Flags().Lookup(runTimeoutFlagName), runTimeoutConfigKey)
}
