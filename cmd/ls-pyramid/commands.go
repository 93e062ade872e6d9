package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/litescript/ls-pyramid/internal/catalog"
	"github.com/litescript/ls-pyramid/internal/pyramid"
	"github.com/litescript/ls-pyramid/internal/ui"
)

var errNotFound = errors.New("not found")

func (a *app) newGenerateCmd() *cobra.Command {
	var (
		output       string
		catalogNames bool
	)

	cmd := &cobra.Command{
		Use:   "generate <triangle|square|circular> <size> [per-layer]",
		Short: "Generate a pyramid and write it as JSON",
		Long: "Generate a pyramid and write it as JSON. For circular pyramids size is the\n" +
			"ring count and per-layer the stars per ring (default 6). The flat star list\n" +
			"is filled from the generated layers so total_stars matches the layers.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := pyramid.ParseShape(args[0])
			if err != nil {
				return err
			}
			size, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", args[1], err)
			}
			spec := pyramid.Spec{Shape: shape, Size: size, PerLayer: 6}
			if len(args) == 3 {
				if shape != pyramid.ShapeCircular {
					return fmt.Errorf("per-layer only applies to circular pyramids")
				}
				if spec.PerLayer, err = strconv.Atoi(args[2]); err != nil {
					return fmt.Errorf("invalid per-layer %q: %w", args[2], err)
				}
			}
			if catalogNames {
				spec.Names = catalog.Names(catalog.Len())
			}

			p := pyramid.New()
			if err := p.Generate(spec); err != nil {
				return err
			}
			p.Flatten()
			a.logger.Info("generated %s pyramid: %d stars in %d layers", shape, p.Len(), p.LayerCount())

			if output == "" || output == "-" {
				return p.Export().WriteJSON(cmd.OutOrStdout())
			}
			return p.ExportFile(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file (- for stdout)")
	cmd.Flags().BoolVar(&catalogNames, "catalog-names", false, "name stars after the brightest real stars")
	return cmd
}

func (a *app) newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>",
		Short: "Print every layer of a pyramid file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.load(args[0])
			if err != nil {
				return err
			}
			a.render(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func (a *app) newStatsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Print statistics for a pyramid file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.load(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !asJSON {
				pyramid.WriteStats(w, p)
				return nil
			}

			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			st, ok := p.Statistics()
			if !ok {
				return enc.Encode(map[string]string{"error": "No stars in pyramid"})
			}
			return enc.Encode(st)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write statistics as JSON")
	return cmd
}

func (a *app) newLayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layer <file> <number>",
		Short: "List the stars of one layer (numbered from 1, as rendered)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid layer number %q: %w", args[1], err)
			}
			p, err := a.load(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			stars := p.Layer(n - 1)
			if len(stars) == 0 {
				fmt.Fprintf(w, "Layer %d has no stars (pyramid has %d layers)\n", n, p.LayerCount())
				return nil
			}
			fmt.Fprintf(w, "Layer %d:\n", n)
			for _, s := range stars {
				fmt.Fprintf(w, "  %s\n", s)
			}
			return nil
		},
	}
}

func (a *app) newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <file> <name>",
		Short: "Look up a star by exact name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.load(args[0])
			if err != nil {
				return err
			}
			s, ok := p.StarByName(args[1])
			if !ok {
				return fmt.Errorf("star %q: %w", args[1], errNotFound)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s color:%s\n", s, s.Color)
			return nil
		},
	}
}

func (a *app) newFilterCmd() *cobra.Command {
	var minMag, maxMag float64

	cmd := &cobra.Command{
		Use:   "filter <file>",
		Short: "List stars whose magnitude lies in [min, max]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if minMag > maxMag {
				return fmt.Errorf("--min %v is greater than --max %v", minMag, maxMag)
			}
			p, err := a.load(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			stars := p.StarsByMagnitude(minMag, maxMag)
			for _, s := range stars {
				fmt.Fprintf(w, "%s\n", s)
			}
			fmt.Fprintf(w, "%d of %d stars with magnitude in [%g, %g]\n", len(stars), p.Len(), minMag, maxMag)
			return nil
		},
	}

	cmd.Flags().Float64Var(&minMag, "min", 0, "minimum magnitude (inclusive)")
	cmd.Flags().Float64Var(&maxMag, "max", 10, "maximum magnitude (inclusive)")
	return cmd
}

func (a *app) newSkyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sky <file>",
		Short: "Plot the stars of a pyramid file as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.load(args[0])
			if err != nil {
				return err
			}
			pyramid.WriteSkyPlot(cmd.OutOrStdout(), p, a.skyConfig())
			return nil
		},
	}
}

func (a *app) newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file>",
		Short: "Browse a pyramid file interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.load(args[0])
			if err != nil {
				return err
			}

			prog := tea.NewProgram(ui.New(p, args[0]), tea.WithAltScreen())
			if _, err := prog.Run(); err != nil {
				return fmt.Errorf("run browser: %w", err)
			}
			return nil
		},
	}
}
