package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-pyramid/internal/pyramid"
)

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the fixed generator, rendering, statistics and export demonstration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd.OutOrStdout())
		},
	}
}

// runDemo generates each pyramid shape, renders it, prints the triangle
// statistics and exports the triangle to the configured path.
//
// Generators only fill layers, so the statistics step reports that the
// triangle has no flat star data.
func (a *app) runDemo(w io.Writer) error {
	log := a.logger.Named("demo")

	fmt.Fprintln(w, "Creating Star List Shape Pyramid Demo")
	fmt.Fprintln(w, strings.Repeat("=", 40))

	triangle := pyramid.New()
	fmt.Fprintln(w, "1. Creating Triangle Pyramid...")
	triangle.Triangle(4, nil)
	log.Debug("triangle: %d layers", triangle.LayerCount())
	a.render(w, triangle)

	square := pyramid.New()
	fmt.Fprintln(w, "\n2. Creating Square Pyramid...")
	square.Square(3, nil)
	log.Debug("square: %d layers", square.LayerCount())
	a.render(w, square)

	circular := pyramid.New()
	fmt.Fprintln(w, "\n3. Creating Circular Pyramid...")
	circular.Circular(3, 6, nil)
	log.Debug("circular: %d layers", circular.LayerCount())
	a.render(w, circular)

	fmt.Fprintln(w, "\n4. Triangle Pyramid Statistics:")
	pyramid.WriteStats(w, triangle)

	fmt.Fprintln(w, "\n5. Exporting to JSON...")
	path := a.cfg.Export.Path
	if err := triangle.ExportFile(path); err != nil {
		return err
	}
	log.Info("exported %d layers to %s", triangle.LayerCount(), path)
	fmt.Fprintf(w, "  Exported to '%s'\n", path)
	return nil
}
