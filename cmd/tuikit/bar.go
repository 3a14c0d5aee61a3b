package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tuikit/internal/ui"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
)

type barOptions struct {
	fontSize string
	width    int
}

func newBarCmd(flags *rootFlags) *cobra.Command {
	opts := barOptions{}

	cmd := &cobra.Command{
		Use:   "bar VALUE [LABEL]",
		Short: "Draw a signed percentage as a bar",
		Long: "Draw a bar whose length is |VALUE| percent of the track.\n" +
			"Positive values use the positive colours, zero and negative values the negative ones.",
		Example: "  tuikit bar 75 'Revenue'\n  tuikit bar -- -40% Churn",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBar(cmd, flags, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.fontSize, "font-size", "", "Label size, e.g. 13px, 1rem or 12pt")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Track width in cells")

	return cmd
}

func runBar(cmd *cobra.Command, flags *rootFlags, opts barOptions, args []string) error {
	if opts.width < 0 {
		return fmt.Errorf("--width must not be negative, got %d", opts.width)
	}

	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	fontSize := opts.fontSize
	if fontSize == "" {
		fontSize = app.cfg.Bar.FontSize
	}
	width := opts.width
	if width == 0 {
		width = app.cfg.Bar.Width
	}

	props := components.BarProps{Value: args[0], FontSize: fontSize}
	if len(args) == 2 {
		props.Content = ui.Static(args[1])
	}

	bar := components.NewBar(props, components.WithLogger(app.log))
	if width > 0 {
		bar = bar.WithTrackWidth(width)
	}

	fmt.Fprintln(app.out, bar.ViewWithContext(app.renderContext()))
	return nil
}
