package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tuikit/internal/dataset"
	"github.com/alexisbeaulieu97/tuikit/internal/tui"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
)

type showcaseOptions struct {
	dataPath string
	rating   int
}

func newShowcaseCmd(flags *rootFlags) *cobra.Command {
	opts := showcaseOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Browse every widget interactively",
		Long: "Open the widget showcase. Keys: m opens the modal, esc closes it, ctrl+b toggles the sidebar,\n" +
			"arrows and enter drive the rating, +/- nudge the first bar, ? shows help, q quits.\n" +
			"When stdout is not a terminal the showcase is printed once.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dataPath, "data", "d", "", "Record file shown in the table")
	cmd.Flags().IntVar(&opts.rating, "rating", 0, "Initial rating (0-5)")

	return cmd
}

func runShowcase(cmd *cobra.Command, flags *rootFlags, opts showcaseOptions) error {
	if opts.rating < 0 || opts.rating > 5 {
		return fmt.Errorf("--rating must be between 0 and 5, got %d", opts.rating)
	}

	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	modelOpts := tui.Options{Config: app.cfg, Rating: opts.rating, Logger: app.log}
	if opts.dataPath != "" {
		if err := validateFilePath("data", opts.dataPath); err != nil {
			return err
		}
		data, err := dataset.Load(opts.dataPath)
		if err != nil {
			return err
		}
		// A file without records shows the placeholder, never the sample rows.
		modelOpts.Records = append([]components.Record{}, data.Records...)
		modelOpts.Columns = data.Columns
	}

	if !isTerminal(app.out) {
		width, _, _ := terminalSize(app.out)
		fmt.Fprintln(app.out, tui.RenderStatic(modelOpts, width))
		return nil
	}

	program := tea.NewProgram(tui.NewModel(modelOpts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("showcase: %w", err)
	}
	return nil
}
