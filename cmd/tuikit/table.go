package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tuikit/internal/dataset"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/htmlview"
)

type tableOptions struct {
	dataPath   string
	columns    []string
	format     string
	highlights []string
}

func newTableCmd(flags *rootFlags) *cobra.Command {
	opts := tableOptions{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Render a record file as a table",
		Long: "Render a YAML or JSON record file as a table in the terminal or as an HTML fragment.\n" +
			"The first record's keys define the columns unless --columns is given.",
		Example: "  tuikit table --data people.yaml --highlight 'age>=30'\n" +
			"  tuikit table --data people.json --format html > people.html",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dataPath, "data", "d", "", "Path to the record file (YAML or JSON)")
	cmd.Flags().StringSliceVar(&opts.columns, "columns", nil, "Column order, comma separated")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "term", "Output format: term or html")
	cmd.Flags().StringArrayVar(&opts.highlights, "highlight", nil, "Highlight cells matching COLUMN OP VALUE (repeatable)")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func validateTableOptions(opts tableOptions) ([]highlightRule, error) {
	if err := validateFilePath("data", opts.dataPath); err != nil {
		return nil, err
	}
	switch strings.ToLower(opts.format) {
	case "term", "html":
	default:
		return nil, fmt.Errorf("unsupported --format %q (want term or html)", opts.format)
	}

	rules := make([]highlightRule, 0, len(opts.highlights))
	for _, expr := range opts.highlights {
		rule, err := parseHighlight(expr)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func runTable(cmd *cobra.Command, flags *rootFlags, opts tableOptions) error {
	rules, err := validateTableOptions(opts)
	if err != nil {
		return err
	}

	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	data, err := dataset.Load(opts.dataPath)
	if err != nil {
		return err
	}
	columns := opts.columns
	if len(columns) == 0 {
		columns = data.Columns
	}
	app.log.WithFields(map[string]any{"records": len(data.Records), "columns": len(columns)}).Debug("dataset loaded")

	headerHook, cellHook := styleHooks(rules)
	table := components.NewTable(components.TableProps{
		Records:     data.Records,
		Columns:     columns,
		Placeholder: app.cfg.Table.Placeholder,
		HeaderStyle: headerHook,
		CellStyle:   cellHook,
	}, components.WithLogger(app.log)).WithBorder(app.cfg.TableBorder())

	if strings.EqualFold(opts.format, "html") {
		return writeHTML(app.out, table)
	}

	fmt.Fprintln(app.out, table.ViewWithContext(app.renderContext()))
	return nil
}

func writeHTML(w io.Writer, table *components.Table) error {
	renderer, err := htmlview.NewTableRenderer()
	if err != nil {
		return err
	}
	return renderer.RenderTable(w, table)
}
