package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
)

func newRatingCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rating N",
		Short:   "Show a committed rating as stars",
		Example: "  tuikit rating 3",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rating must be a whole number: %w", err)
			}
			if level < 0 || level > components.RatingLevels {
				return fmt.Errorf("rating must be between 0 and %d, got %d", components.RatingLevels, level)
			}
			return runRating(cmd, flags, level)
		},
	}

	return cmd
}

func runRating(cmd *cobra.Command, flags *rootFlags, level int) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	stars := components.NewRating(components.RatingProps{
		Committed: components.Int(level),
		Update:    func(int) {},
	}, components.WithLogger(app.log))

	fmt.Fprintf(app.out, "%s  %d/%d\n", stars.ViewWithContext(app.renderContext()), level, components.RatingLevels)
	return nil
}
