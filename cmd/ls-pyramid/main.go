// Command ls-pyramid generates, inspects and renders star pyramids.
//
// Run without arguments it plays a fixed demonstration: triangle, square and
// circular pyramids are generated and rendered, the triangle statistics are
// printed and the triangle is exported to JSON.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
