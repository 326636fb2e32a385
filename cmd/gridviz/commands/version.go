package commands

import (
	"github.com/spf13/cobra"

	"gridviz"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gridviz version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("gridviz " + gridviz.Version)
		},
	}
}
