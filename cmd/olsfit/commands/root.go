package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:          "olsfit",
		Short:        "Least-squares line fitting over point files",
		SilenceUsage: true,
	}

	root.AddCommand(fitCmd(), evalCmd(), versionCmd())
	return root.Execute()
}
