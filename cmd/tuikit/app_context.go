package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tuikit/internal/config"
	"github.com/alexisbeaulieu97/tuikit/internal/logger"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
)

// appContext carries what every command needs once flags are parsed.
type appContext struct {
	log *logger.Logger
	cfg *config.Config
	out io.Writer
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	if flags.styles != "" {
		if err := validateFilePath("styles", flags.styles); err != nil {
			return nil, err
		}
		cfg, err = config.ParseConfig(flags.styles)
		if err != nil {
			return nil, err
		}
		log.WithFields(map[string]any{"path": flags.styles, "theme": cfg.Theme}).Debug("style sheet loaded")
	}

	return &appContext{log: log, cfg: cfg, out: cmd.OutOrStdout()}, nil
}

// renderContext returns the context widgets render with, sized to the
// output terminal when there is one.
func (a *appContext) renderContext() components.RenderContext {
	ctx := components.DefaultContext().
		WithTheme(a.cfg.ThemeValue()).
		WithStyles(a.cfg.StyleSheet())
	if width, _, ok := terminalSize(a.out); ok {
		ctx = ctx.WithSize(width, 0)
	}
	return ctx
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func terminalSize(w io.Writer) (int, int, bool) {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0, 0, false
	}
	width, height, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}
