// Package cmd provides the root command and CLI setup for verdict.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"verdict.dev/pkg/verdict/internal/adapter"
	"verdict.dev/pkg/verdict/internal/controller"
	"verdict.dev/pkg/verdict/internal/domain"
	m "verdict.dev/pkg/verdict/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var suiteResolver adapter.SuiteResolverAdapter
var reportStore adapter.ReportStore
var testAdapter adapter.TestRunnerAdapter
var reportBuilder *domain.ReportBuilder
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters packages for applicable commands.
var excludePatterns []string

var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	workDir, err := os.Getwd()
	cobra.CheckErr(err)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	suiteResolver = adapter.NewLocalSuiteResolverAdapter(fsAdapter, m.Path(workDir))
	reportStore = adapter.NewReportStore()
	testAdapter = adapter.NewLocalTestRunnerAdapter(
		adapter.WithGoBinary(viper.GetString(goBinaryConfigKey)),
		adapter.WithExtraArgs(viper.GetStringSlice(extraArgsConfigKey)...),
	)
	reportBuilder = domain.NewReportBuilder()
	orchestrator = domain.NewOrchestrator(suiteResolver, testAdapter, reportBuilder, ui)
	workflow = domain.NewWorkflow(
		suiteResolver,
		reportStore,
		ui,
		orchestrator,
	)
}

const pathPatternsHelp = `Suites are named by package path relative to the current module:
  - .              the package in the current directory
  - ./internal/foo a single package
  - ./pkg/...      every package with tests under pkg (list only)`

const rootLongDescription = `Verdict runs Go test suites, records the outcome of every test case
and writes a JSON report with per-suite pass/fail counts and failure messages.

` + pathPatternsHelp

const runLongDescription = `Run the named test suites once and persist a report.

Suites that cannot be resolved are reported and skipped; the run continues
with the rest.

` + pathPatternsHelp

const listLongDescription = `List packages that declare tests (default: current module).

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verdict",
		Short: "Go test suite runner and reporter",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a fresh root command with the persistent flags configured.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for test reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude packages matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
