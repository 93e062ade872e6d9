// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Layer browser TUI, sky plot, config file and env overrides
// 0.2.0 - Bright-star catalog names, generate/filter/find commands
// 0.1.0 - Initial release: triangle, square and circular generators, JSON export/import
