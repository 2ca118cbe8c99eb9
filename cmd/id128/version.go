package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/slashdevops/id128/internal/version"
)

func newVersionCmd(o *options) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()

			return o.render(cmd.OutOrStdout(), info, func(w io.Writer) error {
				if !long {
					return writeText(w, "%s version: %s\n", applicationName, info.Version)
				}

				return writeText(w, "%s version: %s, Build date: %s, Build user: %s, Git commit: %s, Git branch: %s, Go version: %s, Platform: %s\n",
					applicationName, info.Version, info.BuildDate, info.BuildUser,
					info.GitCommit, info.GitBranch, info.GoVersion, info.Platform)
			})
		},
	}

	cmd.Flags().BoolVar(&long, "long", false, "Show detailed version information")

	return cmd
}
