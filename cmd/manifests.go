package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zerospeech/zrc2020/internal/validation"
	"github.com/zerospeech/zrc2020/pkg/config"
	"github.com/zerospeech/zrc2020/pkg/exitcode"
	"github.com/zerospeech/zrc2020/pkg/logger"
)

// newManifestsCommand creates a fresh manifests command instance.
func newManifestsCommand() *cobra.Command {
	var language string
	cmd := &cobra.Command{
		Use:   "manifests",
		Short: "List the bundled manifest filelists",
		Long: `Manifests lists the reference filelists compiled into the tool, one per
(language, kind) pair, with the number of entries each expects from a
submission.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runManifests(cmd, language)
		},
	}
	cmd.Flags().StringVar(&language, "language", "",
		"restrict the listing to one language (english|surprise)")
	return cmd
}

func runManifests(cmd *cobra.Command, language string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Cannot load configuration", logger.Err(err))
		os.Exit(exitcode.ConfigError)
	}

	resolver := validation.DefaultManifestResolver()
	if dir := cfg.Validation.ManifestDir; dir != "" {
		resolver = validation.NewManifestResolver(os.DirFS(dir))
	}

	languages := validation.Languages
	if language != "" {
		languages = []string{language}
	}

	kinds := []string{
		validation.KindRequired,
		validation.KindBitrate,
		validation.KindEmbedding,
	}
	for _, language := range languages {
		for _, kind := range kinds {
			manifest, err := resolver.Resolve(language, kind)
			if err != nil {
				return err
			}
			cmd.Printf("%s/%s_filelist.txt\t%d entries\n",
				language, kind, len(manifest.Entries))
		}
	}
	return nil
}
