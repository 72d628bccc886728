package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zerospeech/zrc2020/pkg/buildinfo"
)

// newVersionCommand creates a fresh version command instance.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("zrc2020 %s\n", buildinfo.BinaryVersion)
			if mod := buildinfo.ModuleVersion(); mod != "" {
				cmd.Printf("module %s\n", mod)
			}
		},
	}
}
