package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-pyramid/internal/config"
	"github.com/litescript/ls-pyramid/internal/logging"
	"github.com/litescript/ls-pyramid/internal/pyramid"
	"github.com/litescript/ls-pyramid/internal/ui"
	"github.com/litescript/ls-pyramid/internal/version"
)

// rootOptions holds global CLI flags.
type rootOptions struct {
	configPath string
	logLevel   string
	noColor    bool
}

// app carries the initialized dependencies through the command tree.
type app struct {
	opts   rootOptions
	cfg    *config.Config
	logger *logging.Logger
	styled bool
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:     "ls-pyramid",
		Short:   "Generate and inspect star pyramids",
		Long:    "ls-pyramid builds triangular, square and circular pyramids of named stars,\ngroups them into layers, and renders, queries and exports them.",
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.opts.configPath, "config", "c", "", "config file path (YAML)")
	pf.StringVar(&a.opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVar(&a.opts.noColor, "no-color", false, "disable styled output")

	cmd.AddCommand(
		a.newDemoCmd(),
		a.newGenerateCmd(),
		a.newRenderCmd(),
		a.newStatsCmd(),
		a.newLayerCmd(),
		a.newFindCmd(),
		a.newFilterCmd(),
		a.newSkyCmd(),
		a.newViewCmd(),
	)
	return cmd
}

// init loads configuration, applies flag overrides and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return err
	}
	if a.opts.logLevel != "" {
		cfg.Log.Level = a.opts.logLevel
	}
	if a.opts.noColor {
		cfg.Render.Color = config.ColorNever
	}
	a.cfg = cfg

	a.logger = logging.NewWithFormat(logging.ParseLevel(cfg.Log.Level), logging.Format(cfg.Log.Format))
	a.logger.SetOutput(cmd.ErrOrStderr())

	a.styled = a.useStyle(cmd.OutOrStdout())
	if cfg.Render.Color == config.ColorAlways {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
	a.logger.Debug("config loaded: log=%s color=%s export=%s", cfg.Log.Level, cfg.Render.Color, cfg.Export.Path)
	return nil
}

// useStyle reports whether rendered output should use terminal styling.
func (a *app) useStyle(w io.Writer) bool {
	switch a.cfg.Render.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// render writes the layer listing, styled when enabled.
func (a *app) render(w io.Writer, p *pyramid.Pyramid) {
	if a.styled {
		io.WriteString(w, ui.RenderStyled(p))
		return
	}
	pyramid.WriteASCII(w, p)
}

// load imports the pyramid stored at path.
func (a *app) load(path string) (*pyramid.Pyramid, error) {
	p := pyramid.New()
	if err := p.ImportFile(path); err != nil {
		return nil, err
	}
	a.logger.Debug("imported %s: %d stars in %d layers", path, p.Len(), p.LayerCount())
	return p, nil
}

func (a *app) skyConfig() pyramid.SkyConfig {
	return pyramid.SkyConfig{Width: a.cfg.Sky.Width, Height: a.cfg.Sky.Height}
}
