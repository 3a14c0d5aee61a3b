package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	styles  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tuikit",
		Short:         "tuikit renders tables, bars, ratings and dialogs in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, show every widget.
			if len(args) == 0 {
				return runShowcase(cmd, flags, showcaseOptions{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.styles, "styles", "", "Path to a style sheet file")

	cmd.AddCommand(newTableCmd(flags))
	cmd.AddCommand(newBarCmd(flags))
	cmd.AddCommand(newRatingCmd(flags))
	cmd.AddCommand(newShowcaseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
