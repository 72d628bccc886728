package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zerospeech/zrc2020/pkg/buildinfo"
	"github.com/zerospeech/zrc2020/pkg/exitcode"
	"github.com/zerospeech/zrc2020/pkg/logger"
)

// newRootCommand creates a fresh root command instance.
// This factory pattern allows tests to create isolated command trees without shared state.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zrc2020",
		Short: "Validation tool for ZeroSpeech 2019-track submissions",
		Long: `zrc2020 checks that a submission directory for the 2019 speech
representation track conforms to the required structure, metadata schema and
file formats before it is accepted for scoring.

Examples:
   zrc2020 validate ./submission                 # Validate a closed submission
   zrc2020 validate ./submission --open-source   # Submission bundles its code
   zrc2020 manifests --language english          # Inspect the bundled manifests`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initializeLogger(cmd)
		},
	}

	// Add global flags
	cmd.PersistentFlags().String("log-level", "info", "Set log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Wire Cobra's built-in --version
	cmd.Version = buildinfo.BinaryVersion
	cmd.SetVersionTemplate("zrc2020 {{.Version}}\n")

	return cmd
}

// registerSubcommands adds all subcommands to the root command. Subcommands
// are built through factories so each tree carries its own flag state.
func registerSubcommands(cmd *cobra.Command) {
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newManifestsCommand())
	cmd.AddCommand(newVersionCommand())
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed", logger.Err(err))
		os.Exit(exitcode.GeneralError)
	}
}

func init() {
	registerSubcommands(rootCmd)
}

// initializeLogger sets up the logger based on command flags
func initializeLogger(cmd *cobra.Command) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	logger.Initialize(logger.Config{
		Level:     logger.ParseLevel(logLevelStr),
		UseColor:  !noColor && !jsonLogs,
		JSON:      jsonLogs,
		Component: "zrc2020",
	})
}
