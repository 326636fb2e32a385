package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gridviz"
)

var (
	configPath string
	verbose    bool
)

func Execute() error {
	root := newRoot()
	return root.Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "gridviz",
		Short:         "Visualize 2D linear transformations on a structured grid",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				gridviz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "scene config file (YAML)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")

	root.AddCommand(renderCmd(), casesCmd(), versionCmd())
	return root
}
