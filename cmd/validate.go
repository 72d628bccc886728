package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zerospeech/zrc2020/internal/validation"
	"github.com/zerospeech/zrc2020/pkg/config"
	"github.com/zerospeech/zrc2020/pkg/exitcode"
	"github.com/zerospeech/zrc2020/pkg/logger"
)

// newValidateCommand creates a fresh validate command instance.
func newValidateCommand() *cobra.Command {
	var openSource bool
	cmd := &cobra.Command{
		Use:   "validate <submission-dir>",
		Short: "Validate a 2019 submission directory",
		Long: `Validate checks the submission's top-level layout, the consistency of
optional auxiliary embeddings across the two languages, the metadata.yaml
schema, the code bundle policy, and every per-language artifact directory
against the bundled manifests.

The first structural violation aborts with a diagnostic. Content-level
problems (missing files, malformed embeddings, unreadable audio) are
accumulated and reported in full.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, openSource)
		},
	}
	cmd.Flags().BoolVar(&openSource, "open-source", false,
		"the submission is declared open source (a code directory is required)")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string, openSource bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Cannot load configuration", logger.Err(err))
		os.Exit(exitcode.ConfigError)
	}

	opts := validation.Options{
		StrictEmbeddings: cfg.Validation.StrictEmbeddings,
		AudioExtension:   cfg.Validation.AudioExtension,
	}
	if dir := cfg.Validation.ManifestDir; dir != "" {
		logger.Info("using manifest override", logger.String("dir", dir))
		opts.Resolver = validation.NewManifestResolver(os.DirFS(dir))
	}

	submission, err := validation.NewSubmission(args[0], openSource, opts)
	if err != nil {
		logger.Error("Cannot open submission", logger.Err(err))
		os.Exit(exitcode.FileSystemError)
	}

	logger.Info("validating 2019 submission",
		logger.String("path", args[0]),
		logger.Bool("open_source", openSource))

	if err := submission.Validate(); err != nil {
		cmd.PrintErrln(err)
		cmd.PrintErrln("submission is NOT valid")
		os.Exit(exitcode.ValidationError)
	}

	cmd.Println("submission is valid")
	return nil
}
