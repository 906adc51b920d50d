package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"line-fitter/internal/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("olsfit %s (built %s, commit %s)\n",
				version.Version, version.BuildTime, version.GitCommit)
		},
	}
}
